// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

const (
	REGISTER_COUNT = 8 // Number of general-purpose registers.
	REG_SP         = 7 // Register holding the stack pointer.
)

// RegisterFile is the bank of general-purpose registers.
type RegisterFile [REGISTER_COUNT]uint8

// Get returns the value of a register.
func (rf *RegisterFile) Get(index uint8) (value uint8, err error) {
	if int(index) >= len(rf) {
		err = ErrAddressRange
		return
	}

	value = rf[index]
	return
}

// Set the value of a register.
func (rf *RegisterFile) Set(index uint8, value uint8) (err error) {
	if int(index) >= len(rf) {
		err = ErrAddressRange
		return
	}

	rf[index] = value
	return
}

// Reset zeros all registers, and sets the stack pointer to SP_INIT.
func (rf *RegisterFile) Reset() {
	clear(rf[:])
	rf[REG_SP] = SP_INIT
}

// Flags is the comparison flags register, laid out as 00000LGE.
type Flags uint8

const (
	FLAG_E = Flags(1 << 0) // Equal
	FLAG_G = Flags(1 << 1) // Greater than
	FLAG_L = Flags(1 << 2) // Less than
)

// Equal returns true if the E flag is set.
func (fl Flags) Equal() bool {
	return fl&FLAG_E != 0
}

// Greater returns true if the G flag is set.
func (fl Flags) Greater() bool {
	return fl&FLAG_G != 0
}

// Less returns true if the L flag is set.
func (fl Flags) Less() bool {
	return fl&FLAG_L != 0
}

// String returns the flags as "LGE", with '-' for a clear bit.
func (fl Flags) String() string {
	out := []byte("---")
	if fl.Less() {
		out[0] = 'L'
	}
	if fl.Greater() {
		out[1] = 'G'
	}
	if fl.Equal() {
		out[2] = 'E'
	}
	return string(out)
}
