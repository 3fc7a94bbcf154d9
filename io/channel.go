// Package io provides the I/O collaborators of the LS-8 emulator: the
// output channel written by PRN (Tape), and the program image loaded into
// memory at reset (Rom).
package io

// Channel defines the interface for the LS-8 output channel.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Send writes a single value to the channel.
	Send(value uint8) error
}
