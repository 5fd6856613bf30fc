package asm

import (
	"iter"
	"strings"

	"github.com/ezrec/mipsasm/isa"
)

// Opcode is a line of assembled code with its source location.
type Opcode struct {
	LineNo int      // Source line number, starting at 1.
	Pc     uint32   // Byte address of the instruction.
	Words  []string // Mnemonic and raw operands.
	Code   isa.Code // Encoded instruction word.
}

// Text returns the instruction as written, with operands separated by ', '.
func (op *Opcode) Text() string {
	if len(op.Words) == 0 {
		return ""
	}
	if len(op.Words) == 1 {
		return op.Words[0]
	}
	return op.Words[0] + " " + strings.Join(op.Words[1:], ", ")
}

// Program is the result of an assembly run, in program counter order.
type Program struct {
	Opcodes []Opcode
}

// Lookup finds the opcode at a program counter.
func (prog *Program) Lookup(pc uint32) (op *Opcode, ok bool) {
	for n := range prog.Opcodes {
		if prog.Opcodes[n].Pc == pc {
			return &prog.Opcodes[n], true
		}
	}
	return
}

// Binary returns the encoded words of the program.
func (prog *Program) Binary() (bins []uint32) {
	for _, code := range prog.Codes() {
		bins = append(bins, uint32(code))
	}
	return
}

// Codes iterates the program counter and encoded word of each opcode.
func (prog *Program) Codes() iter.Seq2[uint32, isa.Code] {
	return func(yield func(pc uint32, code isa.Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Pc, op.Code) {
				return
			}
		}
	}
}
