// Package listing writes assembled programs in the text and binary layouts
// consumed by simulators and hardware loaders, and reads text listings back.
package listing

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ezrec/mipsasm/asm"
)

// Style is an output layout.
type Style int

//go:generate go tool stringer -linecomment -type=Style
const (
	STYLE_FULL  = Style(0) // full
	STYLE_PC    = Style(1) // pc
	STYLE_CLEAN = Style(2) // clean
	STYLE_BIN   = Style(3) // bin
)

// Header lines of the commented text styles.
const (
	HEADER_TITLE     = "// MIPS Machine Code"
	HEADER_GENERATOR = "// Generated by MIPS Assembler"
)

// ParseStyle returns the style with the given name.
func ParseStyle(name string) (style Style, err error) {
	for style = STYLE_FULL; style <= STYLE_BIN; style++ {
		if style.String() == name {
			return
		}
	}

	err = ErrStyleUnknown(name)
	return
}

// Write writes the program to w in the requested style.
func Write(w io.Writer, prog *asm.Program, style Style) (err error) {
	if style == STYLE_BIN {
		return binary.Write(w, binary.BigEndian, prog.Binary())
	}

	out := bufio.NewWriter(w)

	if style != STYLE_CLEAN {
		fmt.Fprintln(out, HEADER_TITLE)
		fmt.Fprintln(out, HEADER_GENERATOR)
		fmt.Fprintln(out)
	}

	width := 0
	if style == STYLE_FULL {
		for _, op := range prog.Opcodes {
			width = max(width, len(op.Text()))
		}
	}

	for _, op := range prog.Opcodes {
		switch style {
		case STYLE_FULL:
			_, err = fmt.Fprintf(out, "%08X  // %-*s | PC: %08X\n", uint32(op.Code), width, op.Text(), op.Pc)
		case STYLE_PC:
			_, err = fmt.Fprintf(out, "%08X  // PC: %08X\n", uint32(op.Code), op.Pc)
		case STYLE_CLEAN:
			_, err = fmt.Fprintf(out, "%08X\n", uint32(op.Code))
		default:
			err = ErrStyleUnknown(style.String())
		}
		if err != nil {
			return
		}
	}

	return out.Flush()
}
