package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Rom is a program image, loaded into memory starting at address 0.
//
// The text format is one byte per line, written as a binary literal.
// Anything after a '#' is a comment. Blank and comment-only lines are
// skipped.
//
//	10000010 # LDI R0,8
//	00000000
//	00001000
type Rom struct {
	Data []uint8
}

// parseBinary parses a single binary literal, with an optional 0b prefix
// and '_' separators.
func parseBinary(word string) (value uint8, err error) {
	digits := strings.TrimPrefix(strings.ToLower(word), "0b")
	digits = strings.ReplaceAll(digits, "_", "")

	if len(digits) == 0 {
		err = ErrParseBinary
		return
	}

	for _, ch := range digits {
		if ch != '0' && ch != '1' {
			err = ErrParseBinary
			return
		}
	}

	v64, err := strconv.ParseUint(digits, 2, 64)
	if err != nil || v64 > 0xff {
		err = ErrByteRange
		return
	}

	value = uint8(v64)
	return
}

// Parse replaces the ROM contents with the program in an input stream.
func (rc *Rom) Parse(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	var data []uint8
	for scanner.Scan() {
		lineno += 1
		line = scanner.Text()

		text, _, _ := strings.Cut(line, "#")
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		var value uint8
		value, err = parseBinary(text)
		if err != nil {
			return
		}

		data = append(data, value)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	rc.Data = data

	return
}

// Format writes the ROM contents in the text format read by Parse.
func (rc *Rom) Format(output io.Writer) (err error) {
	for addr, value := range rc.Data {
		_, err = fmt.Fprintf(output, "%08b # %02X\n", value, addr)
		if err != nil {
			return
		}
	}

	return
}
