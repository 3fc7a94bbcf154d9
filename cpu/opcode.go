// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"strings"
)

// Opcode is an LS-8 instruction byte.
//
//	AABCDDDD
//	AA:   number of operand bytes that follow (0-2)
//	B:    1 if this is an ALU operation
//	C:    1 if the instruction sets the PC directly
//	DDDD: instruction identifier
type Opcode uint8

const (
	OPCODE_OPERANDS_SHIFT = 6
	OPCODE_ALU            = Opcode(1 << 5)
	OPCODE_SETS_PC        = Opcode(1 << 4)
	OPCODE_ID_MASK        = Opcode(0xf)
)

const (
	OP_HLT  = Opcode(0b00000001) // HLT
	OP_RET  = Opcode(0b00010001) // RET
	OP_PUSH = Opcode(0b01000101) // PUSH
	OP_POP  = Opcode(0b01000110) // POP
	OP_PRN  = Opcode(0b01000111) // PRN
	OP_CALL = Opcode(0b01010000) // CALL
	OP_JMP  = Opcode(0b01010100) // JMP
	OP_JEQ  = Opcode(0b01010101) // JEQ
	OP_JNE  = Opcode(0b01010110) // JNE
	OP_LDI  = Opcode(0b10000010) // LDI
	OP_ADD  = Opcode(0b10100000) // ADD
	OP_MUL  = Opcode(0b10100010) // MUL
	OP_CMP  = Opcode(0b10100111) // CMP
)

var opcodeName = map[Opcode]string{
	OP_HLT:  "HLT",
	OP_RET:  "RET",
	OP_PUSH: "PUSH",
	OP_POP:  "POP",
	OP_PRN:  "PRN",
	OP_CALL: "CALL",
	OP_JMP:  "JMP",
	OP_JEQ:  "JEQ",
	OP_JNE:  "JNE",
	OP_LDI:  "LDI",
	OP_ADD:  "ADD",
	OP_MUL:  "MUL",
	OP_CMP:  "CMP",
}

// opcodeAlias maps alternate mnemonics to their opcodes.
var opcodeAlias = map[string]Opcode{
	"SAVE":      OP_LDI,
	"PRINT_REG": OP_PRN,
	"MULT":      OP_MUL,
	"JUMP":      OP_JMP,
	"HALT":      OP_HLT,
}

// LookupOpcode finds the opcode for a mnemonic. Case is ignored.
func LookupOpcode(mnemonic string) (op Opcode, ok bool) {
	mnemonic = strings.ToUpper(mnemonic)
	for op, name := range opcodeName {
		if name == mnemonic {
			return op, true
		}
	}
	op, ok = opcodeAlias[mnemonic]
	return
}

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return int(op >> OPCODE_OPERANDS_SHIFT)
}

// IsAlu returns true if the opcode is an ALU operation.
func (op Opcode) IsAlu() bool {
	return op&OPCODE_ALU != 0
}

// SetsPc returns true if the opcode assigns the PC itself.
func (op Opcode) SetsPc() bool {
	return op&OPCODE_SETS_PC != 0
}

// AluOp returns the ALU operation selected by an ALU opcode.
func (op Opcode) AluOp() AluOp {
	return AluOp(op & OPCODE_ID_MASK)
}

// Valid returns true if the opcode is in the instruction set.
func (op Opcode) Valid() bool {
	_, ok := opcodeName[op]
	return ok
}

// String returns the mnemonic, or the hex value for unknown opcodes.
func (op Opcode) String() string {
	name, ok := opcodeName[op]
	if !ok {
		return fmt.Sprintf("0x%02x", uint8(op))
	}
	return name
}

// Instruction is a decoded instruction.
type Instruction struct {
	Opcode   Opcode
	Operands int      // Number of valid entries in Args.
	SetsPc   bool     // Handler assigns the PC, it is not advanced.
	Args     [3]uint8 // Operand bytes.
}

// Decode an instruction byte and its following operand bytes.
// Operands beyond the count encoded in the opcode are ignored.
func Decode(word uint8, args ...uint8) (ins Instruction) {
	op := Opcode(word)
	ins = Instruction{
		Opcode:   op,
		Operands: op.Operands(),
		SetsPc:   op.SetsPc(),
	}

	copy(ins.Args[:ins.Operands], args)

	return
}

// Size returns the number of bytes the instruction occupies in memory.
func (ins Instruction) Size() int {
	return 1 + ins.Operands
}

// String returns the assembly language representation of this instruction.
func (ins Instruction) String() (out string) {
	out = ins.Opcode.String()
	for n := range ins.Operands {
		out += fmt.Sprintf(" 0x%02x", ins.Args[n])
	}
	return
}
