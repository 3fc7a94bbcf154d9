// Package cpu implements the processor and assembler for the LS-8 system.
//
// The CPU consists of 256 bytes of memory, a program counter (PC), eight
// 8-bit general-purpose registers (R0-R7, with R7 reserved as the stack
// pointer), an ALU, and a three bit comparison flags register (L, G, E).
//
// Every instruction byte encodes its own operand count in the upper two
// bits, whether it is an ALU operation in bit 5, and whether it sets the
// PC directly in bit 4. Operand bytes follow the instruction byte in memory.
//
// The assembler provides a small assembly language for the LS-8 instruction
// set, supporting labels, equates, data bytes, and compile-time expression
// evaluation.
package cpu
