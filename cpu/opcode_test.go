package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode_Operands(t *testing.T) {
	assert := assert.New(t)

	table := map[Opcode]int{
		OP_NOP:  0,
		OP_HLT:  0,
		OP_RET:  0,
		OP_IRET: 0,
		OP_PUSH: 1,
		OP_POP:  1,
		OP_PRN:  1,
		OP_PRA:  1,
		OP_CALL: 1,
		OP_INT:  1,
		OP_JMP:  1,
		OP_JEQ:  1,
		OP_JNE:  1,
		OP_JGT:  1,
		OP_JGE:  1,
		OP_JLT:  1,
		OP_JLE:  1,
		OP_INC:  1,
		OP_DEC:  1,
		OP_NOT:  1,
		OP_LDI:  2,
		OP_LD:   2,
		OP_ST:   2,
		OP_ADD:  2,
		OP_SUB:  2,
		OP_MUL:  2,
		OP_DIV:  2,
		OP_MOD:  2,
		OP_CMP:  2,
		OP_AND:  2,
		OP_OR:   2,
		OP_XOR:  2,
		OP_SHL:  2,
		OP_SHR:  2,
	}

	for op, want := range table {
		assert.Equal(want, op.Operands(), op.String())
	}
}

func TestOpcode_SetsPC(t *testing.T) {
	assert := assert.New(t)

	transfers := []Opcode{
		OP_CALL, OP_RET, OP_IRET,
		OP_JMP, OP_JEQ, OP_JNE, OP_JGT, OP_JGE, OP_JLT, OP_JLE,
	}

	for _, op := range transfers {
		assert.True(op.SetsPC(), op.String())
	}

	// INT carries the PC-setter encoding bit but is not a transfer.
	for _, op := range []Opcode{OP_INT, OP_NOP, OP_HLT, OP_LDI, OP_ADD, OP_PUSH} {
		assert.False(op.SetsPC(), op.String())
	}
}

func TestOpcode_IsAlu(t *testing.T) {
	assert := assert.New(t)

	for op := range aluOps {
		assert.True(op.IsAlu(), op.String())
	}

	for _, op := range []Opcode{OP_NOP, OP_HLT, OP_LDI, OP_LD, OP_ST, OP_PUSH, OP_JMP, OP_INT, OP_IRET} {
		assert.False(op.IsAlu(), op.String())
	}
}

func TestOpcode_Valid(t *testing.T) {
	assert := assert.New(t)

	for op := range opcodeNames {
		assert.True(op.Valid(), op.String())
	}

	assert.False(Opcode(0xff).Valid())
	assert.Equal("op(0xff)", Opcode(0xff).String())
	assert.Equal("ldi", OP_LDI.String())
}

func TestOpcode_Table(t *testing.T) {
	assert := assert.New(t)

	// Fixed encodings from the instruction set.
	table := map[Opcode]byte{
		OP_HLT: 0x01,
		OP_LDI: 0x82,
		OP_LD:  0x83,
		OP_ST:  0x84,
		OP_PRN: 0x47,
		OP_PRA: 0x48,
		OP_ADD: 0xa0,
		OP_SUB: 0xa1,
		OP_MUL: 0xa2,
		OP_DIV: 0xa3,
		OP_MOD: 0xa4,
		OP_CMP: 0xa7,
		OP_JMP: 0x54,
		OP_JEQ: 0x55,
		OP_JNE: 0x56,
		OP_INT: 0x52,

		OP_IRET: 0x13,
	}

	for op, want := range table {
		assert.Equal(want, byte(op), op.String())
	}
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("hlt", Instruction{Op: OP_HLT}.String())
	assert.Equal("prn 0x00", Instruction{Op: OP_PRN}.String())
	assert.Equal("ldi 0x01 0x09", Instruction{Op: OP_LDI, A: 1, B: 9}.String())
}
