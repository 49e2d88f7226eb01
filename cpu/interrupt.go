package cpu

import (
	"log"
)

// Interrupt lines and machine layout. The vector table occupies the
// top eight bytes of RAM; the keyboard mailbox shares its address with
// the initial stack pointer, per the LS-8 memory map.
const (
	IS_TIMER    = byte(1 << 0) // Timer interrupt pending.
	IS_KEYBOARD = byte(1 << 1) // Keyboard interrupt pending.

	KEY_MAILBOX = 0xf4 // Last key pressed.
	VECTOR_BASE = 0xf8 // Handler addresses for lines 0-7.

	TIMER_PERIOD = 1.0 // Seconds between timer interrupts.
)

// poll advances the timer accumulator and samples the keyboard,
// raising pending bits in the IS register. The fractional remainder of
// the accumulator carries across timer fires.
func (cp *Cpu) poll() {
	if cp.Clock != nil {
		cp.timer += cp.Clock.Elapsed()
		if cp.timer >= TIMER_PERIOD {
			cp.timer -= TIMER_PERIOD
			cp.Reg[REG_IS] |= IS_TIMER
		}
	}

	if cp.Keyboard != nil {
		value, ok := cp.Keyboard.Poll()
		if ok {
			cp.Ram[KEY_MAILBOX] = value
			cp.Reg[REG_IS] |= IS_KEYBOARD
		}
	}
}

// interruptCheck traps into the handler for the lowest pending,
// unmasked interrupt line. The trap disables further interrupts,
// consumes all pending lines, saves PC, FL, and R0-R6 on the stack,
// and vectors the PC; nothing is fetched this cycle.
func (cp *Cpu) interruptCheck() (trapped bool, err error) {
	if !cp.enabled {
		return
	}

	pending := cp.Reg[REG_IM] & cp.Reg[REG_IS]
	if pending == 0 {
		return
	}

	for line := range 8 {
		if pending&(1<<line) == 0 {
			continue
		}

		cp.enabled = false
		cp.Reg[REG_IS] = 0

		err = cp.Push(cp.PC)
		if err != nil {
			return
		}
		err = cp.Push(cp.FL)
		if err != nil {
			return
		}
		for _, reg := range cp.Reg[:REG_SP] {
			err = cp.Push(reg)
			if err != nil {
				return
			}
		}

		cp.PC, err = cp.Ram.Read(VECTOR_BASE + line)
		if err != nil {
			return
		}

		if cp.Verbose {
			log.Printf("cpu: interrupt %d -> %02x", line, cp.PC)
		}

		trapped = true
		break
	}

	return
}

// interruptReturn restores the context saved by a trap, in mirror
// order, and re-enables interrupts.
func (cp *Cpu) interruptReturn() (err error) {
	for reg := REG_SP - 1; reg >= 0; reg-- {
		cp.Reg[reg], err = cp.Pop()
		if err != nil {
			return
		}
	}

	cp.FL, err = cp.Pop()
	if err != nil {
		return
	}

	cp.PC, err = cp.Pop()
	if err != nil {
		return
	}

	cp.enabled = true

	return
}
