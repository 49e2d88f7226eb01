package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"os"

	"github.com/stackmach/ls8/io"
)

// Register file layout. R5-R7 have dedicated roles on top of being
// ordinary byte registers.
const (
	NUM_REGS = 8 // General-purpose byte registers.

	REG_IM = 5 // Interrupt Mask register.
	REG_IS = 6 // Interrupt Status register.
	REG_SP = 7 // Stack Pointer register.

	SP_INIT = 0xf4 // Stack pointer value after reset.
)

var _cpu_defines = map[string]string{
	"SP_INIT":     fmt.Sprintf("0x%02x", SP_INIT),
	"KEY_MAILBOX": fmt.Sprintf("0x%02x", KEY_MAILBOX),
	"VECTOR_BASE": fmt.Sprintf("0x%02x", VECTOR_BASE),
	"IS_TIMER":    fmt.Sprintf("0x%02x", IS_TIMER),
	"IS_KEYBOARD": fmt.Sprintf("0x%02x", IS_KEYBOARD),
}

// Keyboard is a non-blocking byte source (see the io package).
type Keyboard = io.Keyboard

// Clock reports elapsed wall-clock seconds (see the io package).
type Clock = io.Clock

// Cpu is one LS-8 machine instance: RAM, registers, flags, and the
// attached devices. All state is exclusively owned; a Cpu is not safe
// for concurrent use.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ram Memory         // 256 bytes of RAM.
	Reg [NUM_REGS]byte // Register bank.
	PC  byte           // Program counter.
	IR  Opcode         // Instruction register.
	FL  byte           // Flags register (L/G/E bits).

	Console  *io.Console // PRN/PRA output device.
	Keyboard Keyboard    // Interrupt line 1 byte source.
	Clock    Clock       // Interrupt line 0 time source.

	Ticks int // Instructions executed since reset.

	halted  bool    // Set by HLT; terminal.
	enabled bool    // Interrupts enabled flag.
	timer   float64 // Seconds accumulated toward the next timer interrupt.
}

// Defines for the cpu
func (cp *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// NewCpu creates a reset CPU with console output on stdout and no
// keyboard or clock attached.
func NewCpu() (cp *Cpu) {
	cp = &Cpu{
		Console: &io.Console{Output: os.Stdout},
	}
	cp.Reset()

	return
}

// Reset returns the machine to its power-on state: RAM and registers
// cleared, SP at SP_INIT, PC at 0, interrupts enabled.
func (cp *Cpu) Reset() {
	if cp.Verbose {
		log.Printf("cpu: reset")
	}

	cp.Ram = Memory{}
	clear(cp.Reg[:])
	cp.Reg[REG_SP] = SP_INIT
	cp.PC = 0
	cp.IR = 0
	cp.FL = 0
	cp.Ticks = 0
	cp.halted = false
	cp.enabled = true
	cp.timer = 0
}

// Load copies a bytecode image into RAM starting at address 0.
func (cp *Cpu) Load(image []byte) (err error) {
	if len(image) > len(cp.Ram) {
		err = ErrImageSize
		return
	}

	copy(cp.Ram[:], image)

	return
}

// Halted returns true once a HLT instruction has executed.
func (cp *Cpu) Halted() bool {
	return cp.halted
}

// String returns a one-line state dump: PC, the next three memory
// bytes, and all eight registers, in hex.
func (cp *Cpu) String() (text string) {
	text = fmt.Sprintf("%02X | %02X %02X %02X |",
		cp.PC,
		cp.Ram[cp.PC],
		cp.Ram[byte(cp.PC+1)],
		cp.Ram[byte(cp.PC+2)])

	for _, reg := range cp.Reg {
		text += fmt.Sprintf(" %02X", reg)
	}

	return
}

// regIndex validates an operand byte as a register index.
func regIndex(operand byte) (reg int, err error) {
	if int(operand) >= NUM_REGS {
		err = ErrRegister(operand)
		return
	}

	reg = int(operand)

	return
}

// Fetch reads the opcode at the PC and its operand bytes, and leaves
// the opcode in the IR.
func (cp *Cpu) Fetch() (inst Instruction, err error) {
	value, err := cp.Ram.Read(int(cp.PC))
	if err != nil {
		return
	}

	cp.IR = Opcode(value)
	if !cp.IR.Valid() {
		err = ErrInstruction{Opcode: cp.IR, PC: cp.PC}
		return
	}

	inst.Op = cp.IR
	operands := [2]*byte{&inst.A, &inst.B}
	for n := range cp.IR.Operands() {
		*operands[n], err = cp.Ram.Read(int(cp.PC) + 1 + n)
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction. jumped reports
// whether the instruction set the PC itself, in which case the caller
// must not apply the generic advance.
func (cp *Cpu) Execute(inst Instruction) (jumped bool, err error) {
	if op, ok := aluOps[inst.Op]; ok {
		var ra, rb int
		ra, err = regIndex(inst.A)
		if err != nil {
			return
		}
		rb = ra
		if inst.Op.Operands() == 2 {
			rb, err = regIndex(inst.B)
			if err != nil {
				return
			}
		}
		err = cp.Alu(op, ra, rb)
		return
	}

	switch inst.Op {
	case OP_NOP:
		// pass

	case OP_HLT:
		cp.halted = true

	case OP_LDI:
		var ra int
		ra, err = regIndex(inst.A)
		if err != nil {
			return
		}
		cp.Reg[ra] = inst.B

	case OP_LD:
		var ra, rb int
		ra, err = regIndex(inst.A)
		if err != nil {
			return
		}
		rb, err = regIndex(inst.B)
		if err != nil {
			return
		}
		cp.Reg[ra], err = cp.Ram.Read(int(cp.Reg[rb]))

	case OP_ST:
		var ra, rb int
		ra, err = regIndex(inst.A)
		if err != nil {
			return
		}
		rb, err = regIndex(inst.B)
		if err != nil {
			return
		}
		err = cp.Ram.Write(int(cp.Reg[ra]), cp.Reg[rb])

	case OP_PRN:
		var ra int
		ra, err = regIndex(inst.A)
		if err != nil {
			return
		}
		err = cp.Console.Prn(cp.Reg[ra])

	case OP_PRA:
		var ra int
		ra, err = regIndex(inst.A)
		if err != nil {
			return
		}
		err = cp.Console.Pra(cp.Reg[ra])

	case OP_PUSH:
		var ra int
		ra, err = regIndex(inst.A)
		if err != nil {
			return
		}
		err = cp.Push(cp.Reg[ra])

	case OP_POP:
		var ra int
		ra, err = regIndex(inst.A)
		if err != nil {
			return
		}
		cp.Reg[ra], err = cp.Pop()

	case OP_CALL:
		var ra int
		ra, err = regIndex(inst.A)
		if err != nil {
			return
		}
		err = cp.Push(cp.PC + 2)
		if err != nil {
			return
		}
		cp.PC = cp.Reg[ra]
		jumped = true

	case OP_RET:
		cp.PC, err = cp.Pop()
		jumped = true

	case OP_INT:
		var ra int
		ra, err = regIndex(inst.A)
		if err != nil {
			return
		}
		cp.Reg[REG_IS] |= 1 << cp.Reg[ra]

	case OP_IRET:
		err = cp.interruptReturn()
		jumped = true

	case OP_JMP, OP_JEQ, OP_JNE, OP_JGT, OP_JGE, OP_JLT, OP_JLE:
		var ra int
		ra, err = regIndex(inst.A)
		if err != nil {
			return
		}
		if cp.jumpTaken(inst.Op) {
			cp.PC = cp.Reg[ra]
			jumped = true
		}

	default:
		err = ErrInstruction{Opcode: inst.Op, PC: cp.PC}
	}

	return
}

// jumpTaken tests the FL register against the jump's condition.
func (cp *Cpu) jumpTaken(op Opcode) bool {
	switch op {
	case OP_JMP:
		return true
	case OP_JEQ:
		return cp.FL&FL_E != 0
	case OP_JNE:
		return cp.FL&FL_E == 0
	case OP_JGT:
		return cp.FL&FL_G != 0
	case OP_JGE:
		return cp.FL&(FL_G|FL_E) != 0
	case OP_JLT:
		return cp.FL&FL_L != 0
	case OP_JLE:
		return cp.FL&(FL_L|FL_E) != 0
	}

	return false
}

// Tick executes a single machine cycle: poll devices, trap into a
// pending interrupt handler, or fetch-decode-execute one instruction
// and advance the PC.
func (cp *Cpu) Tick() (done bool, err error) {
	if cp.halted {
		done = true
		return
	}

	cp.poll()

	trapped, err := cp.interruptCheck()
	if err != nil {
		return
	}
	if trapped {
		// The handler's first instruction fetches next cycle.
		return
	}

	inst, err := cp.Fetch()
	if err != nil {
		return
	}

	if cp.Verbose {
		log.Printf("%02x: %v", cp.PC, inst)
	}

	jumped, err := cp.Execute(inst)
	if err != nil {
		return
	}

	if !jumped {
		cp.PC += byte(inst.Op.Operands()) + 1
	}

	cp.Ticks += 1
	done = cp.halted

	return
}
