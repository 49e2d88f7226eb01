package cpu

// Line is one assembled source line: its address, emitted bytes, and
// an optional label reference patched during linking.
type Line struct {
	LineNo    int
	Addr      int
	Words     []string
	Bytes     []byte
	LinkLabel string
}

// Program is an assembled listing, keeping the source line mapping for
// diagnostics.
type Program struct {
	Lines []Line
}

// Debug locates the listing line covering one memory address.
type Debug struct {
	*Line
	Index int
}

// Debug returns the listing line that assembled the byte at addr.
func (prog *Program) Debug(addr byte) (dbg Debug) {
	for n, line := range prog.Lines {
		if int(addr) >= line.Addr && int(addr) < line.Addr+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: int(addr) - line.Addr,
			}
			break
		}
	}

	return
}

// Binary returns the flat bytecode image of the program.
func (prog *Program) Binary() (image []byte) {
	for _, line := range prog.Lines {
		image = append(image, line.Bytes...)
	}

	return
}

// ImageProgram wraps a raw bytecode image in a single-line Program, for
// programs loaded without source.
func ImageProgram(image []byte) (prog *Program) {
	prog = &Program{
		Lines: []Line{{Bytes: image}},
	}

	return
}
