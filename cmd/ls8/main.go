// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/ls8/emulator"
)

// writeImage writes the loaded program image in loader format.
func writeImage(emu *emulator.Emulator, path string) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = emu.Rom.Format(ouf)
	err = errors.Join(err, ouf.Close())

	return
}

func main() {
	var assemble bool
	var output string
	var verbose bool

	flag.BoolVar(&assemble, "S", false, "Program is LS-8 assembly source")
	flag.StringVar(&output, "o", "", "Write the program image to this file, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] <program>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() == 0 {
		log.Printf("%v: %v", os.Args[0], emulator.ErrMissingArgument)
		flag.Usage()
		os.Exit(1)
	}

	if flag.NArg() > 1 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	program := flag.Arg(0)

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Tape.Output = os.Stdout

	err := emu.Load(program, assemble)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	if len(output) != 0 {
		err = writeImage(emu, output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			log.Fatalf("%v: %v", program, err)
		}
	}
}
