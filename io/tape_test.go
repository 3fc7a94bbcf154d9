package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken")
}

func TestTape(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	for _, value := range []uint8{0, 8, 255} {
		err := tape.Send(value)
		assert.NoError(err)
	}

	assert.Equal("0\n8\n255\n", output.String())
	assert.Equal(3, tape.Sent())

	tape.Rewind()
	assert.Equal(0, tape.Sent())
	assert.Equal("0\n8\n255\n", output.String())
}

func TestTape_NoOutput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	err := tape.Send(1)
	assert.ErrorIs(err, ErrChannelClosed)
	assert.Equal(0, tape.Sent())

	tape.Output = failWriter{}
	err = tape.Send(1)
	assert.Error(err)
	assert.Equal(0, tape.Sent())
}
