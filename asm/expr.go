package asm

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// isExpression checks for a $(...) compile-time expression.
func isExpression(word string) bool {
	return len(word) >= 3 && strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")")
}

// evaluate does compile-time $(...) evaluations. Labels, predefines and the
// current PC are visible to the expression.
func (asm *Assembler) evaluate(expr string, pc uint32) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, address := range asm.Label.All() {
		pred[name] = starlark.MakeUint64(uint64(address))
	}
	for name, define := range asm.define {
		pred[name] = starlark.MakeInt64(define)
	}
	pred["PC"] = starlark.MakeUint64(uint64(pc))

	prog := "rc=" + expr + "\n"
	dict, serr := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if serr != nil {
		err = &ErrExpression{Expr: expr, Err: serr}
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrExpression{Expr: expr}
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = &ErrExpression{Expr: expr}
		return
	}

	return
}
