package asm

import (
	"iter"
	"unicode"
)

// LabelTable maps label names to instruction addresses.
type LabelTable struct {
	AllowRedefine bool // If set, a redefinition replaces the earlier address.

	address map[string]uint32
	order   []string
}

// Define binds name to address.
func (lt *LabelTable) Define(name string, address uint32) (err error) {
	if !validLabel(name) {
		err = ErrLabelInvalid(name)
		return
	}

	if lt.address == nil {
		lt.address = make(map[string]uint32, 16)
	}

	_, ok := lt.address[name]
	if ok && !lt.AllowRedefine {
		err = ErrLabelDuplicate(name)
		return
	}
	if !ok {
		lt.order = append(lt.order, name)
	}

	lt.address[name] = address
	return
}

// Resolve returns the address of a label, if defined.
func (lt *LabelTable) Resolve(name string) (address uint32, ok bool) {
	address, ok = lt.address[name]
	return
}

// Len returns the number of defined labels.
func (lt *LabelTable) Len() int {
	return len(lt.order)
}

// All iterates the labels in order of first definition.
func (lt *LabelTable) All() iter.Seq2[string, uint32] {
	return func(yield func(name string, address uint32) bool) {
		for _, name := range lt.order {
			if !yield(name, lt.address[name]) {
				return
			}
		}
	}
}

// Reset removes all labels.
func (lt *LabelTable) Reset() {
	clear(lt.address)
	lt.order = lt.order[:0]
}

// validLabel checks that a label name is non-empty and has no whitespace.
func validLabel(name string) bool {
	if len(name) == 0 {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
