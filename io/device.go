// Package io provides the device models attached to the LS-8 machine:
// the console (PRN/PRA output), a non-blocking keyboard byte source, the
// wall-clock time source for the timer interrupt, and the bytecode image
// reader.
package io

// Keyboard is a non-blocking byte source for the keyboard interrupt
// line. Poll returns the next available byte, if any; the absence of a
// byte is not an error.
type Keyboard interface {
	Poll() (value byte, ok bool)
}

// Clock reports the wall-clock seconds elapsed since the previous
// call, driving the timer interrupt line.
type Clock interface {
	Elapsed() (seconds float64)
}
