package cpu

import (
	"iter"
)

// Statement represents a line of assembled code with its source location
// and generated bytes.
type Statement struct {
	LineNo  int
	Address int
	Words   []string
	Bytes   []uint8
	Links   map[int]string // Byte index to label, resolved at link time.
}

type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
	Index int
}

// Debug finds the statement that generated the byte at an address.
func (prog *Program) Debug(address uint8) (dbg Debug) {
	addr := int(address)
	for n, st := range prog.Statements {
		if addr >= st.Address && addr < st.Address+len(st.Bytes) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     addr - st.Address,
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program, starting at address 0.
// Gaps between statements are zero filled.
func (prog *Program) Binary() (bins []uint8) {
	for addr, value := range prog.Bytes() {
		for len(bins) < int(addr) {
			bins = append(bins, 0)
		}
		bins = append(bins, value)
	}

	return
}

// Bytes iterates over every assembled byte, with its address.
func (prog *Program) Bytes() iter.Seq2[uint8, uint8] {
	return func(yield func(addr uint8, value uint8) bool) {
		for _, st := range prog.Statements {
			addr := uint8(st.Address)
			for n, value := range st.Bytes {
				if !yield(addr+uint8(n), value) {
					return
				}
			}
		}
	}
}
