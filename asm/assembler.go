// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"io"
	"log"
	"math"
	"strings"
	"unicode"

	"github.com/ezrec/mipsasm/isa"
)

// Assembler is a two pass assembler for the MIPS-like instruction set.
//
// The first pass strips comments, binds labels to addresses and records the
// words of each instruction. The second pass resolves operands against the
// complete label table and encodes each instruction.
type Assembler struct {
	Verbose       bool       // If set, verbosely logs the assembler actions.
	AllowRedefine bool       // If set, a redefined label replaces the earlier one.
	Label         LabelTable // Labels bound by the first pass.

	predefine map[string]string // Predefines, as given.
	define    map[string]int64  // Predefines, parsed.
	records   []record          // Instructions found by the first pass.
}

// record is an instruction found by the first pass.
type record struct {
	LineNo int
	Pc     uint32
	Words  []string
}

// Predefine defines a new symbol for $(...) expressions, or redefines an
// existing one.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	return asm.Assemble(lines)
}

// Assemble assembles source lines into a Program. On error no program is
// returned.
func (asm *Assembler) Assemble(lines []string) (prog *Program, err error) {
	asm.Label.Reset()
	asm.Label.AllowRedefine = asm.AllowRedefine
	asm.records = asm.records[:0]

	err = asm.loadPredefines()
	if err != nil {
		return
	}

	err = asm.firstPass(lines)
	if err != nil {
		return
	}

	opcodes, err := asm.secondPass()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: opcodes,
	}

	return
}

// loadPredefines parses the predefined symbol values.
func (asm *Assembler) loadPredefines() (err error) {
	asm.define = make(map[string]int64, len(asm.predefine))
	for name, text := range asm.predefine {
		var value int64
		value, err = ParseImmediate(text)
		if err != nil {
			err = &ErrPredefine{Name: name, Err: err}
			return
		}
		asm.define[name] = value
	}
	return
}

// firstPass binds labels and records instructions with their addresses.
func (asm *Assembler) firstPass(lines []string) (err error) {
	var pc uint32

	for n, text := range lines {
		lineno := n + 1

		line := stripComment(text)
		if len(line) == 0 {
			continue
		}

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		for {
			label, rest, ok := splitLabel(line)
			if !ok {
				break
			}
			err = asm.Label.Define(label, pc)
			if err != nil {
				err = &ErrSyntax{LineNo: lineno, Line: text, Err: err}
				return
			}
			line = rest
		}

		if len(line) == 0 {
			continue
		}

		words := splitWords(line)
		if len(words) == 0 {
			err = &ErrSyntax{LineNo: lineno, Line: text, Err: ErrInstructionEmpty}
			return
		}

		asm.records = append(asm.records, record{LineNo: lineno, Pc: pc, Words: words})
		pc += 4
	}

	return
}

// secondPass encodes every recorded instruction.
func (asm *Assembler) secondPass() (opcodes []Opcode, err error) {
	opcodes = make([]Opcode, 0, len(asm.records))

	for _, rec := range asm.records {
		var code isa.Code
		code, err = asm.encode(rec)
		if err != nil {
			err = &ErrInstruction{LineNo: rec.LineNo, Pc: rec.Pc, Words: rec.Words, Err: err}
			opcodes = nil
			return
		}

		op := Opcode{LineNo: rec.LineNo, Pc: rec.Pc, Words: rec.Words, Code: code}
		if asm.Verbose {
			log.Printf("%08X: %08X %v\n", op.Pc, uint32(op.Code), op.Text())
		}
		opcodes = append(opcodes, op)
	}

	return
}

// encode resolves the operands of a recorded instruction and encodes it.
func (asm *Assembler) encode(rec record) (code isa.Code, err error) {
	mn, ok := isa.Lookup(rec.Words[0])
	if !ok {
		err = ErrMnemonicUnknown(rec.Words[0])
		return
	}

	args := rec.Words[1:]
	if len(args) != mn.Shape.Arity() {
		err = &ErrOperandCount{Mnemonic: mn.Name, Shape: mn.Shape.String(), Want: mn.Shape.Arity(), Got: len(args)}
		return
	}

	ins := isa.Instruction{Mnemonic: mn}
	err = operandDecoder[mn.Shape](asm, rec.Pc, args, &ins)
	if err != nil {
		return
	}

	code = ins.Encode()
	return
}

// operandDecoder fills the typed operand slots of an instruction, by shape.
var operandDecoder = map[isa.Shape]func(asm *Assembler, pc uint32, args []string, ins *isa.Instruction) error{
	isa.SHAPE_RD_RS_RT: func(asm *Assembler, pc uint32, args []string, ins *isa.Instruction) error {
		return registers(args, &ins.Rd, &ins.Rs, &ins.Rt)
	},
	isa.SHAPE_RD_RT_SHAMT: func(asm *Assembler, pc uint32, args []string, ins *isa.Instruction) (err error) {
		err = registers(args, &ins.Rd, &ins.Rt)
		if err != nil {
			return
		}
		ins.Shamt, err = asm.immediate(args[2], pc)
		return
	},
	isa.SHAPE_RD_RT_RS: func(asm *Assembler, pc uint32, args []string, ins *isa.Instruction) error {
		return registers(args, &ins.Rd, &ins.Rt, &ins.Rs)
	},
	isa.SHAPE_RT_RS_IMM: func(asm *Assembler, pc uint32, args []string, ins *isa.Instruction) (err error) {
		err = registers(args, &ins.Rt, &ins.Rs)
		if err != nil {
			return
		}
		ins.Immediate, err = asm.immediate(args[2], pc)
		return
	},
	isa.SHAPE_RT_MEM: func(asm *Assembler, pc uint32, args []string, ins *isa.Instruction) (err error) {
		err = registers(args, &ins.Rt)
		if err != nil {
			return
		}
		ins.Immediate, ins.Rs, err = asm.memory(args[1], pc)
		return
	},
	isa.SHAPE_RS_RT_BRANCH: func(asm *Assembler, pc uint32, args []string, ins *isa.Instruction) (err error) {
		err = registers(args, &ins.Rs, &ins.Rt)
		if err != nil {
			return
		}
		ins.Immediate, err = asm.branchOffset(args[2], pc)
		return
	},
	isa.SHAPE_TARGET: func(asm *Assembler, pc uint32, args []string, ins *isa.Instruction) (err error) {
		ins.Address, err = asm.jumpAddress(args[0], pc)
		return
	},
}

// registers parses the leading words as registers.
func registers(words []string, regs ...*isa.Register) (err error) {
	for n, reg := range regs {
		*reg, err = ParseRegister(words[n])
		if err != nil {
			return
		}
	}
	return
}

// immediate parses a number or evaluates a $(...) expression.
func (asm *Assembler) immediate(word string, pc uint32) (value int64, err error) {
	if isExpression(word) {
		return asm.evaluate(word[2:len(word)-1], pc)
	}
	return ParseImmediate(word)
}

// memory parses 'offset(register)', where offset may be an expression.
func (asm *Assembler) memory(word string, pc uint32) (offset int64, base isa.Register, err error) {
	offsetWord, baseWord, err := splitMemory(word)
	if err != nil {
		return
	}

	offset, err = asm.immediate(offsetWord, pc)
	if err != nil {
		return
	}

	base, err = ParseRegister(baseWord)
	return
}

// target resolves a non-label branch or jump target as a number.
func (asm *Assembler) target(word string, pc uint32) (value int64, err error) {
	value, err = asm.immediate(word, pc)
	if errors.Is(err, ErrImmediateInvalid("")) {
		err = ErrTargetUndefined(word)
	}
	return
}

// branchOffset returns the word offset to a branch target, relative to the
// instruction after the branch. A numeric target is already a word offset.
func (asm *Assembler) branchOffset(word string, pc uint32) (offset int64, err error) {
	address, ok := asm.Label.Resolve(word)
	if ok {
		offset = (int64(address) - (int64(pc) + 4)) >> 2
	} else {
		offset, err = asm.target(word, pc)
		if err != nil {
			return
		}
	}

	if offset < math.MinInt16 || offset > math.MaxInt16 {
		err = &ErrBranchRange{Target: word, Offset: offset}
	}

	return
}

// jumpAddress returns the byte address of a jump target.
func (asm *Assembler) jumpAddress(word string, pc uint32) (address int64, err error) {
	label, ok := asm.Label.Resolve(word)
	if ok {
		address = int64(label)
		return
	}

	return asm.target(word, pc)
}

// stripComment removes '#' and '//' comments and surrounding space.
func stripComment(text string) string {
	line, _, _ := strings.Cut(text, "#")
	line, _, _ = strings.Cut(line, "//")
	return strings.TrimSpace(line)
}

// splitLabel splits a leading 'label:' from the rest of the line. Colons
// inside parentheses are not label separators.
func splitLabel(line string) (label, rest string, ok bool) {
	depth := 0
	for n, r := range line {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ':':
			if depth == 0 {
				return strings.TrimSpace(line[:n]), strings.TrimSpace(line[n+1:]), true
			}
		}
	}
	return
}

// splitWords splits an instruction on commas and whitespace. Separators
// inside parentheses do not split.
func splitWords(line string) (words []string) {
	depth := 0
	start := -1
	for n, r := range line {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case depth <= 0 && (r == ',' || unicode.IsSpace(r)):
			if start >= 0 {
				words = append(words, line[start:n])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = n
		}
	}
	if start >= 0 {
		words = append(words, line[start:])
	}
	return
}
