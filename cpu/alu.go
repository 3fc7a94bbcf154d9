// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// AluOp is an ALU operation type. For ALU instructions it is the low
// nibble of the opcode.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0x0) // add
	ALU_OP_MUL = AluOp(0x2) // mul
	ALU_OP_CMP = AluOp(0x7) // cmp
)

// Compare returns the flags for a comparison of a to b.
// Exactly one of L, G, E is set.
func Compare(a, b uint8) (flags Flags) {
	switch {
	case a < b:
		flags = FLAG_L
	case a > b:
		flags = FLAG_G
	default:
		flags = FLAG_E
	}
	return
}

// Alu performs an ALU operation on two register values.
// Arithmetic wraps modulo 256. Comparisons return the new flags and
// leave the result equal to a.
func Alu(op AluOp, a, b uint8) (result uint8, flags Flags, err error) {
	result = a

	switch op {
	case ALU_OP_ADD:
		result = a + b
	case ALU_OP_MUL:
		result = a * b
	case ALU_OP_CMP:
		flags = Compare(a, b)
	default:
		err = ErrAluUnsupported
	}

	return
}

// doAlu runs an ALU operation on two registers. Arithmetic results are
// written back to reg_a, comparisons update the flags register.
func (cpu *Cpu) doAlu(op AluOp, reg_a, reg_b uint8) (err error) {
	a, err := cpu.Register.Get(reg_a)
	if err != nil {
		return
	}
	b, err := cpu.Register.Get(reg_b)
	if err != nil {
		return
	}

	result, flags, err := Alu(op, a, b)
	if err != nil {
		return
	}

	if op == ALU_OP_CMP {
		cpu.Flags = flags
		return
	}

	cpu.Register[reg_a] = result

	return
}
