package asm

import (
	"strconv"
	"strings"

	"github.com/ezrec/mipsasm/isa"
)

// ParseRegister returns the register named by word, as '$name' or '$N'.
func ParseRegister(word string) (reg isa.Register, err error) {
	reg, ok := isa.RegisterOf(strings.TrimSpace(word))
	if !ok {
		err = ErrRegisterInvalid(word)
	}
	return
}

// ParseImmediate parses a decimal or 0x prefixed hexadecimal number, with an
// optional leading '-'.
func ParseImmediate(word string) (value int64, err error) {
	text := strings.TrimSpace(word)

	negative := false
	if strings.HasPrefix(text, "-") {
		negative = true
		text = text[1:]
	}

	base := 10
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		base = 16
		text = text[2:]
	}

	// ParseUint rejects signs, underscores and empty strings.
	magnitude, perr := strconv.ParseUint(text, base, 63)
	if perr != nil {
		err = ErrImmediateInvalid(word)
		return
	}

	value = int64(magnitude)
	if negative {
		value = -value
	}

	return
}

// splitMemory splits 'offset(register)' into its two parts. The offset may
// itself contain parentheses, so the last '(' opens the register.
func splitMemory(word string) (offset, base string, err error) {
	text := strings.TrimSpace(word)

	open := strings.LastIndexByte(text, '(')
	if open < 0 || !strings.HasSuffix(text, ")") {
		err = ErrMemoryInvalid(word)
		return
	}

	offset = strings.TrimSpace(text[:open])
	base = text[open+1 : len(text)-1]
	if strings.ContainsAny(base, "()") {
		err = ErrMemoryInvalid(word)
		return
	}
	if len(offset) == 0 {
		offset = "0"
	}

	return
}

// ParseMemory parses a memory operand 'offset(register)'. An empty offset is 0.
func ParseMemory(word string) (offset int64, base isa.Register, err error) {
	offsetWord, baseWord, err := splitMemory(word)
	if err != nil {
		return
	}

	offset, err = ParseImmediate(offsetWord)
	if err != nil {
		return
	}

	base, err = ParseRegister(baseWord)
	return
}
