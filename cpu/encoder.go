package cpu

// Opcode bytes of the runtime instructions.
const (
	CODE_NOP       = 0x00
	CODE_INPUT     = 0x04
	CODE_OUTPUT    = 0x05
	CODE_JMP       = 0x06
	CODE_LOAD_IMM  = 0x09
	CODE_INC_A     = 0x0c
	CODE_MOV_BA    = 0x0d
	CODE_ADD_AB    = 0x0e
	CODE_HALT      = 0x0f
	CODE_INC_B     = 0x10
	CODE_MOV_AB    = 0x11
	CODE_SUB_AB    = 0x12
	CODE_NAND_AB   = 0x13
	CODE_OR_AB     = 0x14
	CODE_CMP_AB    = 0x15
	CODE_JZ        = 0x16
	CODE_STORE_MEM = 0x1a
	CODE_LOAD_MEM  = 0x1d
)

// target resolves a memory operand, an address or a label, to its byte.
func target(value Value, symbols Symbols) (addr uint8, ok bool, err error) {
	switch value.Kind {
	case VALUE_ADDRESS:
		return value.Byte, true, nil
	case VALUE_LABEL:
		ip, found := symbols[value.Text]
		if !found {
			return 0, true, ErrLabelMissing(value.Text)
		}
		if ip < 0 || ip > 0xff {
			return 0, true, ErrAddressRange{Label: value.Text, Address: ip}
		}
		return uint8(ip), true, nil
	}
	return 0, false, nil
}

// Encode returns the bytes of the instruction. Labels still present after
// constant folding are looked up in symbols.
func (inst Instruction) Encode(symbols Symbols) (codes []byte, err error) {
	a := inst.Reg[0]
	b := inst.Reg[1]

	var addr uint8
	var isMem bool
	// Only A has a memory form of LOAD and STORE.
	switch {
	case inst.Op == OP_JMP, inst.Op == OP_JZ,
		(inst.Op == OP_LOAD || inst.Op == OP_STORE) && a == REG_A:
		addr, isMem, err = target(inst.Value, symbols)
		if err != nil {
			return
		}
	}

	switch {
	case inst.Op == OP_NOP:
		codes = []byte{CODE_NOP}
	case inst.Op == OP_INPUT:
		codes = []byte{CODE_INPUT}
	case inst.Op == OP_OUTPUT:
		codes = []byte{CODE_OUTPUT}
	case inst.Op == OP_HALT:
		codes = []byte{CODE_HALT}
	case inst.Op == OP_JMP && isMem:
		codes = []byte{CODE_JMP, addr}
	case inst.Op == OP_JZ && isMem:
		codes = []byte{CODE_JZ, addr}
	case inst.Op == OP_LOAD && a == REG_A && inst.Value.Kind == VALUE_IMMEDIATE:
		codes = []byte{CODE_LOAD_IMM, inst.Value.Byte}
	case inst.Op == OP_LOAD && a == REG_A && isMem:
		codes = []byte{CODE_LOAD_MEM, addr}
	case inst.Op == OP_STORE && a == REG_A && isMem:
		codes = []byte{CODE_STORE_MEM, addr}
	case inst.Op == OP_INC && a == REG_A:
		codes = []byte{CODE_INC_A}
	case inst.Op == OP_INC && a == REG_B:
		codes = []byte{CODE_INC_B}
	case inst.Op == OP_MOV && a == REG_B && b == REG_A:
		codes = []byte{CODE_MOV_BA}
	case inst.Op == OP_MOV && a == REG_A && b == REG_B:
		codes = []byte{CODE_MOV_AB}
	case inst.Op == OP_ADD && a == REG_A && b == REG_B:
		codes = []byte{CODE_ADD_AB}
	case inst.Op == OP_SUB && a == REG_A && b == REG_B:
		codes = []byte{CODE_SUB_AB}
	case inst.Op == OP_NAND && a == REG_A && b == REG_B:
		codes = []byte{CODE_NAND_AB}
	case inst.Op == OP_OR && a == REG_A && b == REG_B:
		codes = []byte{CODE_OR_AB}
	case inst.Op == OP_CMP && a == REG_A && b == REG_B:
		codes = []byte{CODE_CMP_AB}
	case inst.Op == OP_DB && inst.Value.Kind == VALUE_IMMEDIATE:
		codes = []byte{inst.Value.Byte}
	case inst.Op == OP_EQU:
		codes = []byte{}
	case inst.Op == OP_RESB:
		codes = make([]byte, inst.Count)
	default:
		err = ErrInstructionUnsupported{Instruction: inst}
	}

	return
}

// Encode returns the bytes of the line's instruction, if any.
func (line *Line) Encode(symbols Symbols) (codes []byte, err error) {
	if line.Instruction == nil {
		return
	}

	codes, err = line.Instruction.Encode(symbols)
	if err != nil {
		err = &ErrSyntax{LineNo: line.Index, Line: line.Text, Err: err}
	}

	return
}
