package io

import (
	"fmt"
	"io"
)

// Tape is the PRN output channel. Each value sent is written to Output
// as a decimal number followed by a newline.
type Tape struct {
	Output io.Writer

	sent int
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape; it only resets the sent counter.
func (tc *Tape) Rewind() {
	tc.sent = 0
}

// Sent returns the number of values written since the last rewind.
func (tc *Tape) Sent() int {
	return tc.sent
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		return
	}

	tc.sent++

	return
}
