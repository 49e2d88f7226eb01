package cpu

// The stack lives in RAM and grows toward lower addresses. R7 is the
// stack pointer; the address is computed before wrapping so a push
// across address 0 faults in Memory instead of wrapping around.

// Push decrements the stack pointer, then stores value at it.
func (cp *Cpu) Push(value byte) (err error) {
	sp := int(cp.Reg[REG_SP]) - 1

	err = cp.Ram.Write(sp, value)
	if err != nil {
		return
	}

	cp.Reg[REG_SP] = byte(sp)

	return
}

// Pop reads the byte at the stack pointer, then increments it.
func (cp *Cpu) Pop() (value byte, err error) {
	sp := int(cp.Reg[REG_SP])

	value, err = cp.Ram.Read(sp)
	if err != nil {
		return
	}

	cp.Reg[REG_SP] = byte(sp + 1)

	return
}
