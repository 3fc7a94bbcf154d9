// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/ls8/io"
)

// Channel is an output channel interface.
type Channel io.Channel

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("%d", MEMORY_SIZE),
	"SP_INIT":        fmt.Sprintf("0x%02x", SP_INIT),
	"REGISTER_COUNT": fmt.Sprintf("%d", REGISTER_COUNT),
	"REG_SP":         fmt.Sprintf("%d", REG_SP),
	"FLAG_E":         fmt.Sprintf("0x%02x", uint8(FLAG_E)),
	"FLAG_G":         fmt.Sprintf("0x%02x", uint8(FLAG_G)),
	"FLAG_L":         fmt.Sprintf("0x%02x", uint8(FLAG_L)),
}

func init() {
	for op, name := range opcodeName {
		_cpu_defines["OP_"+name] = fmt.Sprintf("0x%02x", uint8(op))
	}
}

// Cpu is the simulation context for the LS-8 processor.
// A Cpu is not safe for concurrent use.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory       // Address space.
	Register RegisterFile // Register bank. R7 is the stack pointer.
	Pc       uint8        // Program counter.
	Flags    Flags        // Comparison flags, set only by CMP.
	Halted   bool         // Set by HLT.
	Faulted  bool         // Set when an instruction fails.

	Ticks int // CPU ticks counter.

	Output Channel // Destination of PRN.
}

// handler executes a decoded instruction. Handlers for instructions
// that set the PC directly must assign it on every successful path.
type handler func(cpu *Cpu, ins Instruction) (err error)

var opcodeTable = map[Opcode]handler{
	OP_HLT:  (*Cpu).opHlt,
	OP_RET:  (*Cpu).opRet,
	OP_PUSH: (*Cpu).opPush,
	OP_POP:  (*Cpu).opPop,
	OP_PRN:  (*Cpu).opPrn,
	OP_CALL: (*Cpu).opCall,
	OP_JMP:  (*Cpu).opJmp,
	OP_JEQ:  (*Cpu).opJeq,
	OP_JNE:  (*Cpu).opJne,
	OP_LDI:  (*Cpu).opLdi,
	OP_ADD:  (*Cpu).opAlu,
	OP_MUL:  (*Cpu).opAlu,
	OP_CMP:  (*Cpu).opAlu,
}

// NewCpu creates a new CPU that prints to an output channel.
func NewCpu(output Channel) (cpu *Cpu) {
	cpu = &Cpu{
		Output: output,
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "fl", cpu.Flags)
	for n, val := range cpu.Register {
		name := fmt.Sprintf("r%d", n)
		if n == REG_SP {
			name = "sp"
		}
		text += fmt.Sprintf("% 5s: %02X\n", name, val)
	}
	text += fmt.Sprintf("% 5s: %v\n", "halt", cpu.Halted)
	text += fmt.Sprintf("% 5s: %v\n", "fault", cpu.Faulted)

	return
}

// Trace returns a single line showing the PC, the three bytes at the PC,
// and all of the registers.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	pc := cpu.Pc
	fmt.Fprintf(&sb, "TRACE: %02X | %02X %02X %02X |", pc,
		cpu.Memory.Read(pc), cpu.Memory.Read(pc+1), cpu.Memory.Read(pc+2))
	for _, val := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", val)
	}

	return sb.String()
}

// Reset the CPU state.
// - Clears memory, registers, and flags.
// - Sets the stack pointer to SP_INIT, and the PC to 0.
// - Zeros the tick counter.
// - Rewinds the output channel.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Register.Reset()
	cpu.Pc = 0
	cpu.Flags = 0
	cpu.Halted = false
	cpu.Faulted = false
	cpu.Ticks = 0

	if cpu.Output != nil {
		cpu.Output.Rewind()
	}
}

// Fetch decodes the instruction at the PC.
func (cpu *Cpu) Fetch() (ins Instruction) {
	pc := cpu.Pc
	return Decode(cpu.Memory.Read(pc), cpu.Memory.Read(pc+1), cpu.Memory.Read(pc+2), cpu.Memory.Read(pc+3))
}

// Tick executes a single CPU instruction cycle.
// A halted or faulted CPU does nothing until Reset.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted || cpu.Faulted {
		err = ErrHalted
		return
	}

	ins := cpu.Fetch()

	if cpu.Verbose {
		log.Print(cpu.Trace())
	}

	err = cpu.Execute(ins)

	return
}

// Execute executes a single decoded instruction, and advances the PC
// past it unless the instruction assigned the PC itself.
// Any error faults the CPU.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	defer func() {
		if err != nil {
			cpu.Faulted = true
			err = errors.Join(ErrOpcode(ins.Opcode), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, ins)
	}

	handle, ok := opcodeTable[ins.Opcode]
	if !ok {
		err = ErrOpcodeUnrecognized
		return
	}

	err = handle(cpu, ins)
	if err != nil {
		return
	}

	if !ins.SetsPc {
		cpu.Pc += uint8(ins.Size())
	}

	cpu.Ticks += 1

	return
}

// jumpTo sets the PC to the value held in a register.
func (cpu *Cpu) jumpTo(reg uint8) (err error) {
	target, err := cpu.Register.Get(reg)
	if err != nil {
		return
	}

	cpu.Pc = target
	return
}

func (cpu *Cpu) opHlt(ins Instruction) (err error) {
	cpu.Halted = true
	return
}

func (cpu *Cpu) opLdi(ins Instruction) (err error) {
	err = cpu.Register.Set(ins.Args[0], ins.Args[1])
	return
}

func (cpu *Cpu) opPrn(ins Instruction) (err error) {
	value, err := cpu.Register.Get(ins.Args[0])
	if err != nil {
		return
	}

	if cpu.Output == nil {
		err = ErrChannelInvalid
		return
	}

	err = cpu.Output.Send(value)
	return
}

func (cpu *Cpu) opAlu(ins Instruction) (err error) {
	err = cpu.doAlu(ins.Opcode.AluOp(), ins.Args[0], ins.Args[1])
	return
}

func (cpu *Cpu) opPush(ins Instruction) (err error) {
	err = cpu.pushRegister(ins.Args[0])
	return
}

func (cpu *Cpu) opPop(ins Instruction) (err error) {
	err = cpu.popRegister(ins.Args[0])
	return
}

func (cpu *Cpu) opCall(ins Instruction) (err error) {
	_, err = cpu.Register.Get(ins.Args[0])
	if err != nil {
		return
	}

	// Return address is the instruction after CALL.
	cpu.Push(cpu.Pc + uint8(ins.Size()))

	err = cpu.jumpTo(ins.Args[0])
	return
}

func (cpu *Cpu) opRet(ins Instruction) (err error) {
	cpu.Pc = cpu.Pop()
	return
}

func (cpu *Cpu) opJmp(ins Instruction) (err error) {
	err = cpu.jumpTo(ins.Args[0])
	return
}

func (cpu *Cpu) opJeq(ins Instruction) (err error) {
	return cpu.branch(ins, cpu.Flags.Equal())
}

func (cpu *Cpu) opJne(ins Instruction) (err error) {
	return cpu.branch(ins, !cpu.Flags.Equal())
}

// branch jumps to the address in the register operand if taken,
// otherwise falls through to the next instruction.
func (cpu *Cpu) branch(ins Instruction, taken bool) (err error) {
	reg := ins.Args[0]
	_, err = cpu.Register.Get(reg)
	if err != nil {
		return
	}

	if !taken {
		cpu.Pc += uint8(ins.Size())
		return
	}

	err = cpu.jumpTo(reg)
	return
}
