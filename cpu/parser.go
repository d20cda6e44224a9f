package cpu

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// regMap maps register names.
var regMap = map[string]Register{
	"A": REG_A,
	"B": REG_B,
}

// ParseLine parses one line of source text. The index is the 1-based
// line number, recorded for diagnostics. Errors are wrapped in ErrSyntax.
func ParseLine(text string, index int) (line Line, err error) {
	line = Line{Index: index, Text: strings.TrimSpace(text)}

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: index, Line: line.Text, Err: err}
		}
	}()

	body, _, _ := strings.Cut(text, ";")
	body = strings.ToUpper(strings.TrimSpace(body))
	if len(body) == 0 {
		return
	}

	label, rest, found := strings.Cut(body, ":")
	if found {
		label = strings.TrimSpace(label)
		if len(label) == 0 || strings.ContainsFunc(label, unicode.IsSpace) {
			err = ErrLabelInvalid(label)
			return
		}
		line.Label = label
		body = strings.TrimSpace(rest)
		if len(body) == 0 {
			return
		}
	}

	words := strings.Fields(body)

	// NAME EQU value, where NAME is not a mnemonic.
	_, isOp := opMap[words[0]]
	if !isOp && len(words) >= 2 && words[1] == OP_EQU.String() {
		if found {
			err = ErrLabelInvalid(words[0])
			return
		}
		line.Label = words[0]
		words = words[1:]
	}

	inst, err := parseInstruction(words[0], strings.Join(words[1:], " "))
	if err != nil {
		return
	}

	if inst.Op == OP_EQU && len(line.Label) == 0 {
		err = ErrEquateMissing
		return
	}

	line.Instruction = &inst

	return
}

// splitArgs splits an argument string on commas outside of parentheses.
func splitArgs(args string) (parts []string) {
	args = strings.TrimSpace(args)
	if len(args) == 0 {
		return
	}

	depth := 0
	start := 0
	for n, ch := range args {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(args[start:n]))
				start = n + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(args[start:]))

	return
}

// parseInstruction parses a mnemonic and its raw argument text.
func parseInstruction(mnemonic string, args string) (inst Instruction, err error) {
	op, ok := opMap[mnemonic]
	if !ok {
		err = ErrMnemonic(mnemonic)
		return
	}

	inst.Op = op
	shape := op.Shape()

	parts := splitArgs(args)
	if len(parts) != shape.Operands() || slices.Contains(parts, "") {
		err = ErrOperandCount{Op: op, Want: shape.Operands(), Got: len(parts)}
		return
	}

	switch shape {
	case SHAPE_REG:
		inst.Reg[0], err = parseRegister(parts[0])
	case SHAPE_REG_REG:
		inst.Reg[0], err = parseRegister(parts[0])
		if err != nil {
			return
		}
		inst.Reg[1], err = parseRegister(parts[1])
	case SHAPE_REG_VALUE:
		inst.Reg[0], err = parseRegister(parts[0])
		if err != nil {
			return
		}
		inst.Value, err = parseValue(parts[1])
	case SHAPE_VALUE:
		inst.Value, err = parseValue(parts[0])
	case SHAPE_COUNT:
		inst.Count, err = parseU8(parts[0])
	}

	return
}

// parseRegister parses a register name.
func parseRegister(word string) (reg Register, err error) {
	reg, ok := regMap[word]
	if !ok {
		err = ErrRegister(word)
	}
	return
}

// parseU8 parses a decimal byte.
func parseU8(word string) (value uint8, err error) {
	v, err := strconv.ParseUint(word, 10, 8)
	if err != nil {
		err = ErrNumber(word)
		return
	}
	value = uint8(v)
	return
}

// isDigits returns true if the word is a non-empty run of decimal digits.
func isDigits(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, ch := range word {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// parseValue parses an operand: an expression, an immediate, an address,
// or else a label.
func parseValue(word string) (value Value, err error) {
	imm := strings.HasPrefix(word, "#")
	body := strings.TrimPrefix(word, "#")

	switch {
	case strings.HasPrefix(body, "$(") && strings.HasSuffix(body, ")"):
		value.Text = strings.TrimSpace(body[2 : len(body)-1])
		if len(value.Text) == 0 {
			err = ErrExpression{Expr: value.Text}
			return
		}
		value.Kind = VALUE_EXPRESSION
		if imm {
			value.Kind = VALUE_IMMEDIATE_EXPRESSION
		}
	case isDigits(body):
		var v uint8
		v, err = parseU8(body)
		if err != nil {
			err = ErrNumber(word)
			return
		}
		if imm {
			value = Immediate(v)
		} else {
			value = Address(v)
		}
	default:
		value = Label(word)
	}

	return
}
