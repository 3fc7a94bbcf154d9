package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/io"
)

func TestWriteImage(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator()
	err := emu.Load(filepath.Join("..", "..", "emulator", "testdata", "print8.ls8"), false)
	assert.NoError(err)

	path := filepath.Join(t.TempDir(), "print8.ls8")
	err = writeImage(emu, path)
	assert.NoError(err)

	inf, err := os.Open(path)
	assert.NoError(err)
	defer inf.Close()

	rom := io.Rom{}
	err = rom.Parse(inf)
	assert.NoError(err)
	assert.Equal([]uint8{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, rom.Data)

	err = writeImage(emu, filepath.Join(t.TempDir(), "missing", "out.ls8"))
	assert.ErrorIs(err, fs.ErrNotExist)
}
