package cpu

import (
	"fmt"
)

// Opcode is a single LS-8 instruction byte.
//
// The encoding packs the operand count into the two most-significant
// bits, and bit 5 marks ALU instructions. Bit 4 is set on most of the
// instructions that touch the PC, but INT carries it too, so control
// transfers are identified by SetsPC rather than by the bit.
type Opcode byte

const (
	OP_NOP  = Opcode(0b00000000) // nop
	OP_HLT  = Opcode(0b00000001) // hlt
	OP_RET  = Opcode(0b00010001) // ret
	OP_IRET = Opcode(0b00010011) // iret

	OP_PUSH = Opcode(0b01000101) // push
	OP_POP  = Opcode(0b01000110) // pop
	OP_PRN  = Opcode(0b01000111) // prn
	OP_PRA  = Opcode(0b01001000) // pra
	OP_CALL = Opcode(0b01010000) // call
	OP_INT  = Opcode(0b01010010) // int

	OP_JMP = Opcode(0b01010100) // jmp
	OP_JEQ = Opcode(0b01010101) // jeq
	OP_JNE = Opcode(0b01010110) // jne
	OP_JGT = Opcode(0b01010111) // jgt
	OP_JLT = Opcode(0b01011000) // jlt
	OP_JLE = Opcode(0b01011001) // jle
	OP_JGE = Opcode(0b01011010) // jge

	OP_INC = Opcode(0b01100101) // inc
	OP_DEC = Opcode(0b01100110) // dec
	OP_NOT = Opcode(0b01101001) // not

	OP_LDI = Opcode(0b10000010) // ldi
	OP_LD  = Opcode(0b10000011) // ld
	OP_ST  = Opcode(0b10000100) // st

	OP_ADD = Opcode(0b10100000) // add
	OP_SUB = Opcode(0b10100001) // sub
	OP_MUL = Opcode(0b10100010) // mul
	OP_DIV = Opcode(0b10100011) // div
	OP_MOD = Opcode(0b10100100) // mod
	OP_CMP = Opcode(0b10100111) // cmp
	OP_AND = Opcode(0b10101000) // and
	OP_OR  = Opcode(0b10101010) // or
	OP_XOR = Opcode(0b10101011) // xor
	OP_SHL = Opcode(0b10101100) // shl
	OP_SHR = Opcode(0b10101101) // shr
)

// opcodeNames maps each opcode to its mnemonic.
var opcodeNames = map[Opcode]string{
	OP_NOP:  "nop",
	OP_HLT:  "hlt",
	OP_RET:  "ret",
	OP_IRET: "iret",
	OP_PUSH: "push",
	OP_POP:  "pop",
	OP_PRN:  "prn",
	OP_PRA:  "pra",
	OP_CALL: "call",
	OP_INT:  "int",
	OP_JMP:  "jmp",
	OP_JEQ:  "jeq",
	OP_JNE:  "jne",
	OP_JGT:  "jgt",
	OP_JLT:  "jlt",
	OP_JLE:  "jle",
	OP_JGE:  "jge",
	OP_INC:  "inc",
	OP_DEC:  "dec",
	OP_NOT:  "not",
	OP_LDI:  "ldi",
	OP_LD:   "ld",
	OP_ST:   "st",
	OP_ADD:  "add",
	OP_SUB:  "sub",
	OP_MUL:  "mul",
	OP_DIV:  "div",
	OP_MOD:  "mod",
	OP_CMP:  "cmp",
	OP_AND:  "and",
	OP_OR:   "or",
	OP_XOR:  "xor",
	OP_SHL:  "shl",
	OP_SHR:  "shr",
}

// opcodeOf maps a mnemonic back to its opcode.
var opcodeOf = map[string]Opcode{}

func init() {
	for op, name := range opcodeNames {
		opcodeOf[name] = op
	}
}

// Valid returns true if the opcode is a known instruction.
func (op Opcode) Valid() bool {
	_, ok := opcodeNames[op]
	return ok
}

// Operands returns the operand count encoded in the opcode's two
// most-significant bits.
func (op Opcode) Operands() int {
	return int(op >> 6)
}

// IsAlu returns true if the opcode dispatches to the ALU.
func (op Opcode) IsAlu() bool {
	return (op & 0b00100000) != 0
}

// SetsPC returns true if the instruction sets the PC directly and must
// not receive the generic post-instruction advance. Conditional jumps
// count even though an untaken jump falls through.
func (op Opcode) SetsPC() bool {
	switch op {
	case OP_CALL, OP_RET, OP_IRET,
		OP_JMP, OP_JEQ, OP_JNE, OP_JGT, OP_JGE, OP_JLT, OP_JLE:
		return true
	}

	return false
}

// String returns the opcode mnemonic.
func (op Opcode) String() string {
	name, ok := opcodeNames[op]
	if !ok {
		return fmt.Sprintf("op(0x%02x)", byte(op))
	}
	return name
}

// Instruction is a decoded opcode with its operand bytes. Unused
// operands are zero.
type Instruction struct {
	Op Opcode
	A  byte
	B  byte
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() (out string) {
	switch inst.Op.Operands() {
	case 0:
		out = inst.Op.String()
	case 1:
		out = fmt.Sprintf("%v 0x%02x", inst.Op, inst.A)
	default:
		out = fmt.Sprintf("%v 0x%02x 0x%02x", inst.Op, inst.A, inst.B)
	}

	return
}
