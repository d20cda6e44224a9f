package cpu

// decodeMap maps opcode bytes to the instruction they encode. Memory and
// jump operands are filled in from the byte that follows.
var decodeMap = map[byte]Instruction{
	CODE_NOP:       {Op: OP_NOP},
	CODE_INPUT:     {Op: OP_INPUT},
	CODE_OUTPUT:    {Op: OP_OUTPUT},
	CODE_JMP:       {Op: OP_JMP},
	CODE_LOAD_IMM:  {Op: OP_LOAD, Reg: [2]Register{REG_A}},
	CODE_INC_A:     {Op: OP_INC, Reg: [2]Register{REG_A}},
	CODE_MOV_BA:    {Op: OP_MOV, Reg: [2]Register{REG_B, REG_A}},
	CODE_ADD_AB:    {Op: OP_ADD, Reg: [2]Register{REG_A, REG_B}},
	CODE_HALT:      {Op: OP_HALT},
	CODE_INC_B:     {Op: OP_INC, Reg: [2]Register{REG_B}},
	CODE_MOV_AB:    {Op: OP_MOV, Reg: [2]Register{REG_A, REG_B}},
	CODE_SUB_AB:    {Op: OP_SUB, Reg: [2]Register{REG_A, REG_B}},
	CODE_NAND_AB:   {Op: OP_NAND, Reg: [2]Register{REG_A, REG_B}},
	CODE_OR_AB:     {Op: OP_OR, Reg: [2]Register{REG_A, REG_B}},
	CODE_CMP_AB:    {Op: OP_CMP, Reg: [2]Register{REG_A, REG_B}},
	CODE_JZ:        {Op: OP_JZ},
	CODE_STORE_MEM: {Op: OP_STORE, Reg: [2]Register{REG_A}},
	CODE_LOAD_MEM:  {Op: OP_LOAD, Reg: [2]Register{REG_A}},
}

// Decoded is an instruction found at an address of a byte stream.
type Decoded struct {
	Ip          int
	Instruction Instruction
}

// Decode turns a byte stream back into runtime instructions. Data emitted by
// DB and RESB is indistinguishable from code, and decodes as such.
func Decode(codes []byte) (insts []Decoded, err error) {
	for ip := 0; ip < len(codes); {
		inst, ok := decodeMap[codes[ip]]
		if !ok {
			err = ErrOpcodeDecodeAt{Ip: ip, Code: codes[ip]}
			return
		}

		if inst.Size() == 2 {
			if ip+1 >= len(codes) {
				err = ErrOpcodeDecodeAt{Ip: ip, Code: codes[ip]}
				return
			}
			if codes[ip] == CODE_LOAD_IMM {
				inst.Value = Immediate(codes[ip+1])
			} else {
				inst.Value = Address(codes[ip+1])
			}
		}

		insts = append(insts, Decoded{Ip: ip, Instruction: inst})
		ip += inst.Size()
	}

	return
}
