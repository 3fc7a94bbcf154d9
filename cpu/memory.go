// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

const (
	MEMORY_SIZE = 256  // Size of the address space, in bytes.
	SP_INIT     = 0xf4 // Initial stack pointer. The stack grows down from here.
)

// Memory is the flat LS-8 address space.
//
// Addresses are 8 bits wide, so every address computed by the CPU
// (PC+1, SP-1, ...) wraps modulo MEMORY_SIZE and is always in range.
type Memory [MEMORY_SIZE]uint8

// Read the byte at an address.
func (mem *Memory) Read(address uint8) uint8 {
	return mem[address]
}

// Write a byte to an address.
func (mem *Memory) Write(address uint8, value uint8) {
	mem[address] = value
}

// Load copies an image into memory starting at offset.
// The whole image must fit; nothing is written otherwise.
func (mem *Memory) Load(offset int, data []uint8) (err error) {
	if offset < 0 || offset+len(data) > len(mem) {
		err = ErrAddressRange
		return
	}

	copy(mem[offset:], data)

	return
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem[:])
}
