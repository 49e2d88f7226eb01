package io

import (
	"fmt"
	"io"
)

// Console renders PRN and PRA instructions onto an io.Writer.
type Console struct {
	Output io.Writer
}

// Prn writes the decimal value of a register byte, followed by a
// newline.
func (con *Console) Prn(value byte) (err error) {
	_, err = fmt.Fprintf(con.Output, "%d\n", value)

	return
}

// Pra writes the character whose code point equals the register byte,
// with no newline.
func (con *Console) Pra(value byte) (err error) {
	_, err = fmt.Fprintf(con.Output, "%c", value)

	return
}
