package cpu

const (
	MEM_SIZE = 256 // Bytes of RAM.
)

// Memory is the LS-8 RAM: a flat array of byte cells. Addresses are
// plain ints so that runaway pointer arithmetic lands out of range
// instead of wrapping.
type Memory [MEM_SIZE]byte

// Read returns the byte at the given address.
func (mem *Memory) Read(addr int) (value byte, err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrAddressing(addr)
		return
	}

	value = mem[addr]

	return
}

// Write stores a byte at the given address.
func (mem *Memory) Write(addr int, value byte) (err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrAddressing(addr)
		return
	}

	mem[addr] = value

	return
}
