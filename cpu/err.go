package cpu

import (
	"errors"
	"fmt"

	"github.com/ezrec/acc8/translate"
)

var f = translate.From

var (
	// Error categories, matched with errors.Is().
	ErrLineInvalid        = errors.New(f("line invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrU8Invalid          = errors.New(f("u8 invalid"))
	ErrCyclic             = errors.New(f("cyclic reference"))
	ErrUndefined          = errors.New(f("undefined label"))
	ErrUnsupported        = errors.New(f("unsupported instruction"))

	// Assembler errors
	ErrEquateMissing = fmt.Errorf("%w: %v", ErrLineInvalid, f("equ without a name"))
	ErrProgramSize   = errors.New(f("program exceeds memory"))

	// Decode errors
	ErrOpcodeDecode = errors.New(f("decode"))
)

type ErrLabelInvalid string

func (err ErrLabelInvalid) Error() string {
	return f("'%v' is not a label", string(err))
}

func (err ErrLabelInvalid) Is(target error) bool {
	return target == ErrLineInvalid
}

type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("unknown instruction %v", string(err))
}

func (err ErrMnemonic) Is(target error) bool {
	return target == ErrInstructionInvalid
}

type ErrOperandCount struct {
	Op   Op
	Want int
	Got  int
}

func (err ErrOperandCount) Error() string {
	return f("%v takes %d operands, not %d", err.Op, err.Want, err.Got)
}

func (err ErrOperandCount) Is(target error) bool {
	return target == ErrInstructionInvalid
}

type ErrRegister string

func (err ErrRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrRegister) Is(target error) bool {
	return target == ErrRegisterInvalid
}

type ErrNumber string

func (err ErrNumber) Error() string {
	return f("'%v' is not a number in 0..255", string(err))
}

func (err ErrNumber) Is(target error) bool {
	return target == ErrU8Invalid
}

type ErrAddressRange struct {
	Label   string
	Address int
}

func (err ErrAddressRange) Error() string {
	return f("label %v address %d does not fit in a byte", err.Label, err.Address)
}

func (err ErrAddressRange) Is(target error) bool {
	return target == ErrU8Invalid
}

type ErrCyclicReference struct {
	Name  string
	Value Value
}

func (err ErrCyclicReference) Error() string {
	return f("constant %v refers back to itself through %v", err.Name, err.Value)
}

func (err ErrCyclicReference) Is(target error) bool {
	return target == ErrCyclic
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

func (el ErrLabelMissing) Is(target error) bool {
	return target == ErrUndefined
}

type ErrInstructionUnsupported struct {
	Instruction Instruction
}

func (err ErrInstructionUnsupported) Error() string {
	return f("no encoding for %v", err.Instruction)
}

func (err ErrInstructionUnsupported) Is(target error) bool {
	return target == ErrUnsupported
}

type ErrEquateDuplicate string

func (err ErrEquateDuplicate) Error() string {
	return f("equ %v duplicated", string(err))
}

func (err ErrEquateDuplicate) Is(target error) bool {
	return target == ErrLineInvalid
}

type ErrExpression struct {
	Expr string
	Err  error
}

func (err ErrExpression) Error() string {
	if err.Err == nil {
		return f("$(%v) is not a valid expression", err.Expr)
	}
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
}

func (err ErrExpression) Is(target error) bool {
	return target == ErrInstructionInvalid
}

func (err ErrExpression) Unwrap() error {
	return err.Err
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrOpcodeDecodeAt struct {
	Ip   int
	Code byte
}

func (err ErrOpcodeDecodeAt) Error() string {
	return f("bad opcode 0x%02x at %d", err.Code, err.Ip)
}

func (err ErrOpcodeDecodeAt) Is(target error) bool {
	return target == ErrOpcodeDecode
}
