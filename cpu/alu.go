package cpu

// AluOp is an ALU operation type.
type AluOp int

const (
	ALU_ADD = AluOp(iota) // add
	ALU_SUB               // sub
	ALU_MUL               // mul
	ALU_DIV               // div
	ALU_MOD               // mod
	ALU_INC               // inc
	ALU_DEC               // dec
	ALU_AND               // and
	ALU_OR                // or
	ALU_XOR               // xor
	ALU_NOT               // not
	ALU_SHL               // shl
	ALU_SHR               // shr
	ALU_CMP               // cmp
)

// aluNames maps ALU operations to their mnemonics.
var aluNames = map[AluOp]string{
	ALU_ADD: "add",
	ALU_SUB: "sub",
	ALU_MUL: "mul",
	ALU_DIV: "div",
	ALU_MOD: "mod",
	ALU_INC: "inc",
	ALU_DEC: "dec",
	ALU_AND: "and",
	ALU_OR:  "or",
	ALU_XOR: "xor",
	ALU_NOT: "not",
	ALU_SHL: "shl",
	ALU_SHR: "shr",
	ALU_CMP: "cmp",
}

// String returns the ALU operation mnemonic.
func (op AluOp) String() string {
	name, ok := aluNames[op]
	if !ok {
		return "alu(?)"
	}
	return name
}

// aluOps maps ALU opcodes to their operations.
var aluOps = map[Opcode]AluOp{
	OP_ADD: ALU_ADD,
	OP_SUB: ALU_SUB,
	OP_MUL: ALU_MUL,
	OP_DIV: ALU_DIV,
	OP_MOD: ALU_MOD,
	OP_INC: ALU_INC,
	OP_DEC: ALU_DEC,
	OP_AND: ALU_AND,
	OP_OR:  ALU_OR,
	OP_XOR: ALU_XOR,
	OP_NOT: ALU_NOT,
	OP_SHL: ALU_SHL,
	OP_SHR: ALU_SHR,
	OP_CMP: ALU_CMP,
}

// Flag register bits, set exclusively by CMP.
const (
	FL_E = byte(1 << 0) // Equal
	FL_G = byte(1 << 1) // Greater
	FL_L = byte(1 << 2) // Less
)

// Alu performs a register-to-register operation, writing the result
// back into register ra. CMP only updates the FL register. Byte
// registers give all results modulo 256 for free.
func (cp *Cpu) Alu(op AluOp, ra, rb int) (err error) {
	a := cp.Reg[ra]
	b := cp.Reg[rb]

	switch op {
	case ALU_ADD:
		cp.Reg[ra] = a + b
	case ALU_SUB:
		cp.Reg[ra] = a - b
	case ALU_MUL:
		cp.Reg[ra] = a * b
	case ALU_DIV:
		if b == 0 {
			err = ErrDivideByZero{Op: op, RegA: ra, RegB: rb}
			return
		}
		cp.Reg[ra] = a / b
	case ALU_MOD:
		if b == 0 {
			err = ErrDivideByZero{Op: op, RegA: ra, RegB: rb}
			return
		}
		cp.Reg[ra] = a % b
	case ALU_INC:
		cp.Reg[ra] = a + 1
	case ALU_DEC:
		cp.Reg[ra] = a - 1
	case ALU_AND:
		cp.Reg[ra] = a & b
	case ALU_OR:
		cp.Reg[ra] = a | b
	case ALU_XOR:
		cp.Reg[ra] = a ^ b
	case ALU_NOT:
		cp.Reg[ra] = ^a
	case ALU_SHL:
		cp.Reg[ra] = a << b
	case ALU_SHR:
		cp.Reg[ra] = a >> b
	case ALU_CMP:
		switch {
		case a < b:
			cp.FL = FL_L
		case a > b:
			cp.FL = FL_G
		default:
			cp.FL = FL_E
		}
	default:
		// Reachable only through an engine decode bug.
		err = ErrAluOperation
		return
	}

	return
}
