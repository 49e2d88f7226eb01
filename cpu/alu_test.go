package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu_Operations(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		op   AluOp
		a    byte
		b    byte
		want byte
	}){
		{"add", ALU_ADD, 8, 9, 17},
		{"add_wrap", ALU_ADD, 200, 100, 44},
		{"sub", ALU_SUB, 9, 8, 1},
		{"sub_wrap", ALU_SUB, 0, 1, 255},
		{"mul", ALU_MUL, 8, 9, 72},
		{"mul_wrap", ALU_MUL, 16, 16, 0},
		{"div", ALU_DIV, 17, 5, 3},
		{"mod", ALU_MOD, 17, 5, 2},
		{"inc", ALU_INC, 255, 0, 0},
		{"dec", ALU_DEC, 0, 0, 255},
		{"and", ALU_AND, 0b1100, 0b1010, 0b1000},
		{"or", ALU_OR, 0b1100, 0b1010, 0b1110},
		{"xor", ALU_XOR, 0b1100, 0b1010, 0b0110},
		{"not", ALU_NOT, 0b10101010, 0, 0b01010101},
		{"shl", ALU_SHL, 0b1, 3, 0b1000},
		{"shl_out", ALU_SHL, 0x81, 1, 0x02},
		{"shr", ALU_SHR, 0b1000, 3, 0b1},
		{"shr_wide", ALU_SHR, 0xff, 8, 0},
	}

	for _, entry := range table {
		cp := NewCpu()
		cp.Reg[0] = entry.a
		cp.Reg[1] = entry.b

		err := cp.Alu(entry.op, 0, 1)
		assert.NoError(err, entry.name)
		assert.Equal(entry.want, cp.Reg[0], entry.name)
		assert.Equal(entry.b, cp.Reg[1], entry.name)
	}
}

func TestAlu_Compare(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		a    byte
		b    byte
		want byte
	}){
		{"less", 1, 2, FL_L},
		{"greater", 2, 1, FL_G},
		{"equal", 7, 7, FL_E},
		{"zero", 0, 0, FL_E},
	}

	for _, entry := range table {
		cp := NewCpu()
		cp.Reg[0] = entry.a
		cp.Reg[1] = entry.b
		cp.FL = 0xff // CMP overwrites, never accumulates

		err := cp.Alu(ALU_CMP, 0, 1)
		assert.NoError(err, entry.name)
		assert.Equal(entry.want, cp.FL, entry.name)
		assert.Equal(entry.a, cp.Reg[0], entry.name)
	}
}

func TestAlu_DivideByZero(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []AluOp{ALU_DIV, ALU_MOD} {
		cp := NewCpu()
		cp.Reg[2] = 10
		cp.Reg[3] = 0

		err := cp.Alu(op, 2, 3)
		assert.ErrorIs(err, ErrDivideByZero{}, op.String())
		assert.Equal(ErrDivideByZero{Op: op, RegA: 2, RegB: 3}, err, op.String())
		assert.Equal(byte(10), cp.Reg[2], "no silent result")
	}
}

func TestAlu_Unsupported(t *testing.T) {
	assert := assert.New(t)

	cp := NewCpu()

	err := cp.Alu(AluOp(99), 0, 1)
	assert.ErrorIs(err, ErrAluOperation)
}
