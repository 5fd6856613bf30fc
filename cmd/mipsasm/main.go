// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/mipsasm/asm"
	"github.com/ezrec/mipsasm/listing"
)

func main() {
	var output string
	var format string
	var verbose bool
	var disassemble bool
	var redefine bool

	asmr := &asm.Assembler{}

	flag.StringVar(&output, "o", "-", "Output file")
	flag.StringVar(&format, "f", "full", "Output format: full, pc, clean or bin")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&disassemble, "d", false, "Disassemble a hex listing instead of assembling")
	flag.BoolVar(&redefine, "r", false, "Allow labels to be redefined")
	flag.Func("D", "Predefine NAME=VALUE for $(...) expressions", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("expected NAME=VALUE, got %q", arg)
		}
		asmr.Predefine(name, value)
		return nil
	})
	flag.Usage = usage

	flag.Parse()

	// mipsasm [flags] <input.asm> [output.hex [format]]
	args := flag.Args()
	if len(args) < 1 || len(args) > 3 {
		flag.Usage()
		os.Exit(1)
	}
	input := args[0]
	if len(args) > 1 {
		output = args[1]
	}
	if len(args) > 2 {
		format = args[2]
	}

	style, err := listing.ParseStyle(format)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	inf, err := open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	if disassemble {
		err = disassembleListing(inf, output)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		return
	}

	asmr.Verbose = verbose
	asmr.AllowRedefine = redefine

	prog, err := asmr.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	ouf, err := create(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	err = listing.Write(ouf, prog, style)
	if err == nil {
		err = ouf.Close()
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	if verbose || term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "Assembly successful! Generated %d instructions.\n", len(prog.Opcodes))
		fmt.Fprintf(os.Stderr, "Output written to: %v\n", output)
		fmt.Fprintf(os.Stderr, "Format style: %v\n", style)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %v [flags] <input.asm> [output.hex [format]]\n", os.Args[0])
	fmt.Fprintln(out, "Format options:")
	fmt.Fprintln(out, "  full  - Include PC, machine code, and original instruction (default)")
	fmt.Fprintln(out, "  pc    - Include PC and machine code only")
	fmt.Fprintln(out, "  clean - Machine code only (no comments)")
	fmt.Fprintln(out, "  bin   - Raw big-endian 32-bit words")
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
}

// disassembleListing prints the disassembly of a hex listing.
func disassembleListing(inf io.Reader, output string) (err error) {
	codes, err := listing.Read(inf)
	if err != nil {
		return
	}

	ouf, err := create(output)
	if err != nil {
		return
	}

	for n, code := range codes {
		_, err = fmt.Fprintf(ouf, "%08X  %08X  %v\n", n*4, uint32(code), code)
		if err != nil {
			ouf.Close()
			return
		}
	}

	return ouf.Close()
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// open opens a file for reading, where '-' is stdin.
func open(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

// create creates a file for writing, where '-' is stdout.
func create(name string) (io.WriteCloser, error) {
	if name == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(name)
}
