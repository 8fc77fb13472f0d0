package asm

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// PredefineExpr defines a global constant from an integer expression.
// Earlier predefined constants may be used in the expression.
func (asm *Assembler) PredefineExpr(name string, expr string) (err error) {
	if !identifierPattern.MatchString(name) {
		err = &ErrToken{Text: name, Err: ErrPredefine}
		return
	}

	thread := starlark.Thread{Name: "predefine"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range asm.predefine {
		pred[key] = starlark.MakeInt(value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, name, prog, pred)
	if err != nil {
		err = &ErrToken{Text: expr, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrToken{Text: expr, Err: ErrPredefine}
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok {
		err = &ErrToken{Text: expr, Err: ErrPredefine}
		return
	}

	asm.Predefine(name, int(st_int64))
	return
}
