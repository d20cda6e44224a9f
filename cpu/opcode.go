package cpu

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -linecomment -type=Register,Shape,ValueKind

// Register is one of the two working registers.
type Register int

const (
	REG_A = Register(0) // A
	REG_B = Register(1) // B
)

// Op is an instruction mnemonic.
type Op int

const (
	OP_NOP    = Op(0)  // NOP
	OP_INPUT  = Op(1)  // INPUT
	OP_OUTPUT = Op(2)  // OUTPUT
	OP_HALT   = Op(3)  // HALT
	OP_INC    = Op(4)  // INC
	OP_MOV    = Op(5)  // MOV
	OP_ADD    = Op(6)  // ADD
	OP_SUB    = Op(7)  // SUB
	OP_NAND   = Op(8)  // NAND
	OP_OR     = Op(9)  // OR
	OP_CMP    = Op(10) // CMP
	OP_LOAD   = Op(11) // LOAD
	OP_STORE  = Op(12) // STORE
	OP_JMP    = Op(13) // JMP
	OP_JZ     = Op(14) // JZ
	OP_DB     = Op(15) // DB
	OP_EQU    = Op(16) // EQU
	OP_RESB   = Op(17) // RESB
)

// Shape is the operand layout of an Op.
type Shape int

const (
	SHAPE_NONE      = Shape(0) // no operands
	SHAPE_REG       = Shape(1) // register
	SHAPE_REG_REG   = Shape(2) // register, register
	SHAPE_REG_VALUE = Shape(3) // register, value
	SHAPE_VALUE     = Shape(4) // value
	SHAPE_COUNT     = Shape(5) // byte count
)

// Operands returns the number of comma separated operands of the shape.
func (shape Shape) Operands() int {
	switch shape {
	case SHAPE_NONE:
		return 0
	case SHAPE_REG_REG, SHAPE_REG_VALUE:
		return 2
	}
	return 1
}

type opInfo struct {
	name  string
	shape Shape
}

var opTable = [...]opInfo{
	OP_NOP:    {"NOP", SHAPE_NONE},
	OP_INPUT:  {"INPUT", SHAPE_NONE},
	OP_OUTPUT: {"OUTPUT", SHAPE_NONE},
	OP_HALT:   {"HALT", SHAPE_NONE},
	OP_INC:    {"INC", SHAPE_REG},
	OP_MOV:    {"MOV", SHAPE_REG_REG},
	OP_ADD:    {"ADD", SHAPE_REG_REG},
	OP_SUB:    {"SUB", SHAPE_REG_REG},
	OP_NAND:   {"NAND", SHAPE_REG_REG},
	OP_OR:     {"OR", SHAPE_REG_REG},
	OP_CMP:    {"CMP", SHAPE_REG_REG},
	OP_LOAD:   {"LOAD", SHAPE_REG_VALUE},
	OP_STORE:  {"STORE", SHAPE_REG_VALUE},
	OP_JMP:    {"JMP", SHAPE_VALUE},
	OP_JZ:     {"JZ", SHAPE_VALUE},
	OP_DB:     {"DB", SHAPE_VALUE},
	OP_EQU:    {"EQU", SHAPE_VALUE},
	OP_RESB:   {"RESB", SHAPE_COUNT},
}

// opMap maps mnemonics to ops.
var opMap = func() map[string]Op {
	ops := make(map[string]Op, len(opTable))
	for op, info := range opTable {
		ops[info.name] = Op(op)
	}
	return ops
}()

func (op Op) String() string {
	if op < 0 || int(op) >= len(opTable) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opTable[op].name
}

// Shape returns the operand layout of the op.
func (op Op) Shape() Shape {
	if op < 0 || int(op) >= len(opTable) {
		return SHAPE_NONE
	}
	return opTable[op].shape
}

// ValueKind selects the payload of a Value.
type ValueKind int

const (
	VALUE_IMMEDIATE            = ValueKind(0) // #n
	VALUE_ADDRESS              = ValueKind(1) // n
	VALUE_LABEL                = ValueKind(2) // name
	VALUE_EXPRESSION           = ValueKind(3) // $(expr)
	VALUE_IMMEDIATE_EXPRESSION = ValueKind(4) // #$(expr)
)

// Value is an operand payload.
type Value struct {
	Kind ValueKind
	Byte uint8  // Immediate or address byte.
	Text string // Label name, or expression source.
}

// Immediate makes a literal value.
func Immediate(v uint8) Value {
	return Value{Kind: VALUE_IMMEDIATE, Byte: v}
}

// Address makes a literal memory address.
func Address(v uint8) Value {
	return Value{Kind: VALUE_ADDRESS, Byte: v}
}

// Label makes a reference to a constant or an instruction address.
func Label(name string) Value {
	return Value{Kind: VALUE_LABEL, Text: name}
}

// Numeric returns true if the value is a literal byte.
func (v Value) Numeric() bool {
	return v.Kind == VALUE_IMMEDIATE || v.Kind == VALUE_ADDRESS
}

func (v Value) String() string {
	switch v.Kind {
	case VALUE_IMMEDIATE:
		return fmt.Sprintf("#%d", v.Byte)
	case VALUE_ADDRESS:
		return fmt.Sprintf("%d", v.Byte)
	case VALUE_EXPRESSION:
		return "$(" + v.Text + ")"
	case VALUE_IMMEDIATE_EXPRESSION:
		return "#$(" + v.Text + ")"
	}
	return v.Text
}

// Instruction is an op with its operands. Only the operands selected by
// the op's Shape are meaningful.
type Instruction struct {
	Op    Op
	Reg   [2]Register // Register operands, in source order.
	Value Value       // Value operand.
	Count uint8       // RESB byte count.
}

func (inst Instruction) String() string {
	var args []string
	switch inst.Op.Shape() {
	case SHAPE_REG:
		args = []string{inst.Reg[0].String()}
	case SHAPE_REG_REG:
		args = []string{inst.Reg[0].String(), inst.Reg[1].String()}
	case SHAPE_REG_VALUE:
		args = []string{inst.Reg[0].String(), inst.Value.String()}
	case SHAPE_VALUE:
		args = []string{inst.Value.String()}
	case SHAPE_COUNT:
		args = []string{fmt.Sprintf("%d", inst.Count)}
	}

	if len(args) == 0 {
		return inst.Op.String()
	}

	return inst.Op.String() + " " + strings.Join(args, ",")
}

// Size returns the number of bytes the instruction occupies. It depends on
// the op only, never on operand values.
func (inst Instruction) Size() int {
	switch inst.Op {
	case OP_LOAD, OP_STORE, OP_JMP, OP_JZ:
		return 2
	case OP_RESB:
		return int(inst.Count)
	case OP_EQU:
		return 0
	}
	return 1
}

// Line is the parsed form of one line of source.
type Line struct {
	Index       int          // 1-based source line number.
	Text        string       // Source text, for diagnostics.
	Label       string       // Label naming the address of the next instruction.
	Instruction *Instruction // Instruction, if any.
}
