package cpu

import (
	"errors"
	"regexp"
	"slices"

	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// equate is a single EQU definition.
type equate struct {
	line  *Line
	value Value
}

// resolver folds EQU constants into operands.
type resolver struct {
	defs     map[string]equate
	order    []string
	resolved map[string]Value
}

// identRe matches the names an expression may refer to.
var identRe = regexp.MustCompile(`\b[A-Z_][A-Z0-9_]*`)

// ResolveConstants collects every EQU definition, resolves constants
// defined in terms of other constants, evaluates $(...) expressions, and
// substitutes the results into every operand. Labels that name no constant
// are left for the encoder. Label fields, ops, and line indices are never
// changed.
func ResolveConstants(lines []Line) (out []Line, err error) {
	res, err := resolveConstants(lines)
	if err != nil {
		return
	}

	out = res.lines
	return
}

// resolution is the outcome of constant folding.
type resolution struct {
	lines     []Line
	constants map[string]Value
}

func resolveConstants(lines []Line) (res resolution, err error) {
	r := &resolver{
		defs:     map[string]equate{},
		resolved: map[string]Value{},
	}

	for n := range lines {
		line := &lines[n]
		if line.Instruction == nil || line.Instruction.Op != OP_EQU {
			continue
		}
		_, ok := r.defs[line.Label]
		if ok {
			err = &ErrSyntax{LineNo: line.Index, Line: line.Text, Err: ErrEquateDuplicate(line.Label)}
			return
		}
		r.defs[line.Label] = equate{line: line, value: line.Instruction.Value}
		r.order = append(r.order, line.Label)
	}

	for _, name := range r.order {
		_, err = r.resolve(name, map[string]bool{})
		if err != nil {
			line := r.defs[name].line
			err = &ErrSyntax{LineNo: line.Index, Line: line.Text, Err: err}
			return
		}
	}

	res.constants = r.resolved
	res.lines = slices.Clone(lines)
	for n := range res.lines {
		line := &res.lines[n]
		if line.Instruction == nil || line.Instruction.Op.Shape() == SHAPE_COUNT {
			continue
		}
		inst := *line.Instruction
		inst.Value, err = r.substitute(inst.Value)
		if err != nil {
			err = &ErrSyntax{LineNo: line.Index, Line: line.Text, Err: err}
			return
		}
		line.Instruction = &inst
	}

	return
}

// resolve returns the final value of a constant. The visiting set holds the
// constants in the current walk; meeting one again is a cycle.
func (r *resolver) resolve(name string, visiting map[string]bool) (value Value, err error) {
	value, ok := r.resolved[name]
	if ok {
		return
	}

	visiting[name] = true
	defer delete(visiting, name)

	value = r.defs[name].value
	switch value.Kind {
	case VALUE_LABEL:
		if visiting[value.Text] {
			err = ErrCyclicReference{Name: name, Value: value}
			return
		}
		_, ok = r.defs[value.Text]
		if ok {
			value, err = r.resolve(value.Text, visiting)
			if err != nil {
				return
			}
		}
	case VALUE_EXPRESSION, VALUE_IMMEDIATE_EXPRESSION:
		value, err = r.evaluate(name, value, visiting)
		if err != nil {
			return
		}
	}

	r.resolved[name] = value
	return
}

// substitute replaces a constant reference or an expression by its value.
func (r *resolver) substitute(value Value) (Value, error) {
	switch value.Kind {
	case VALUE_LABEL:
		resolved, ok := r.resolved[value.Text]
		if ok {
			return resolved, nil
		}
	case VALUE_EXPRESSION, VALUE_IMMEDIATE_EXPRESSION:
		return r.evaluate("", value, map[string]bool{})
	}
	return value, nil
}

// evaluate does compile-time $(...) evaluations. Every numeric constant the
// expression names is predeclared.
func (r *resolver) evaluate(name string, expr Value, visiting map[string]bool) (value Value, err error) {
	pred := starlark.StringDict{}
	var unknown []string
	for _, ident := range identRe.FindAllString(expr.Text, -1) {
		_, ok := r.defs[ident]
		if !ok {
			unknown = append(unknown, ident)
			continue
		}
		if visiting[ident] {
			err = ErrCyclicReference{Name: name, Value: expr}
			return
		}
		var v Value
		v, err = r.resolve(ident, visiting)
		if err != nil {
			return
		}
		if v.Numeric() {
			pred[ident] = starlark.MakeInt(int(v.Byte))
		}
	}

	thread := starlark.Thread{Name: "equ"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr.Text + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		var undefined resolve.ErrorList
		if errors.As(err, &undefined) && len(unknown) != 0 {
			err = ErrLabelMissing(unknown[0])
			return
		}
		err = ErrExpression{Expr: expr.Text, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression{Expr: expr.Text}
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xff {
		err = ErrNumber(expr.String())
		return
	}

	if expr.Kind == VALUE_IMMEDIATE_EXPRESSION {
		value = Immediate(uint8(st_int64))
	} else {
		value = Address(uint8(st_int64))
	}

	return
}
