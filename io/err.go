package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelClosed = errors.New(f("channel has no output"))

	// Loader errors
	ErrParseBinary = errors.New(f("not a binary literal"))
	ErrByteRange   = errors.New(f("value exceeds a byte"))
)

// ErrSyntax indicates the location of a loader error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
