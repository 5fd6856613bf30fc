package asm

import (
	"errors"
	"strings"

	"github.com/ezrec/mipsasm/translate"
)

var f = translate.From

var (
	// Driver errors
	ErrInstructionEmpty = errors.New(f("instruction empty"))
)

// ErrRegisterInvalid is a word that does not name a register.
type ErrRegisterInvalid string

func (err ErrRegisterInvalid) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrRegisterInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrRegisterInvalid)
	return
}

// ErrImmediateInvalid is a word that is not a decimal or hexadecimal number.
type ErrImmediateInvalid string

func (err ErrImmediateInvalid) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrImmediateInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrImmediateInvalid)
	return
}

// ErrMemoryInvalid is a word that is not of the form 'offset(register)'.
type ErrMemoryInvalid string

func (err ErrMemoryInvalid) Error() string {
	return f("'%v' is not a memory operand", string(err))
}

func (err ErrMemoryInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrMemoryInvalid)
	return
}

// ErrMnemonicUnknown is an instruction name missing from the instruction table.
type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("unknown instruction '%v'", string(err))
}

func (err ErrMnemonicUnknown) Is(target error) (ok bool) {
	_, ok = target.(ErrMnemonicUnknown)
	return
}

// ErrTargetUndefined is a branch or jump target that is neither a label nor a number.
type ErrTargetUndefined string

func (err ErrTargetUndefined) Error() string {
	return f("target '%v' is not a label or number", string(err))
}

func (err ErrTargetUndefined) Is(target error) (ok bool) {
	_, ok = target.(ErrTargetUndefined)
	return
}

// ErrLabelDuplicate is a label defined more than once.
type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label '%v' duplicated", string(err))
}

func (err ErrLabelDuplicate) Is(target error) (ok bool) {
	_, ok = target.(ErrLabelDuplicate)
	return
}

// ErrLabelInvalid is a label name that is empty or contains whitespace.
type ErrLabelInvalid string

func (err ErrLabelInvalid) Error() string {
	return f("label '%v' invalid", string(err))
}

func (err ErrLabelInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrLabelInvalid)
	return
}

// ErrOperandCount is an instruction with the wrong number of operands.
type ErrOperandCount struct {
	Mnemonic string
	Shape    string
	Want     int
	Got      int
}

func (err *ErrOperandCount) Error() string {
	return f("%v requires %v operands (%v), got %v", err.Mnemonic, err.Want, err.Shape, err.Got)
}

// ErrBranchRange is a branch offset that does not fit in 16 signed bits.
type ErrBranchRange struct {
	Target string
	Offset int64
}

func (err *ErrBranchRange) Error() string {
	return f("branch target '%v' is too far for beq (offset %v words)", err.Target, err.Offset)
}

// ErrExpression is a $(...) expression that failed to evaluate to an integer.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	if err.Err == nil {
		return f("$(%v) is not an integer expression", err.Expr)
	}
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// ErrPredefine is a predefined symbol with an invalid value.
type ErrPredefine struct {
	Name string
	Err  error
}

func (err *ErrPredefine) Error() string {
	return f("predefine %v %v", err.Name, err.Err)
}

func (err *ErrPredefine) Unwrap() error {
	return err.Err
}

// ErrSyntax locates a source line that could not be read.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrInstruction locates an instruction that could not be assembled.
type ErrInstruction struct {
	LineNo int
	Pc     uint32
	Words  []string
	Err    error
}

func (err *ErrInstruction) Error() string {
	return f("line %d PC %08X '%v' %v", err.LineNo, err.Pc, strings.Join(err.Words, " "), err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
