package io

import (
	"github.com/stackmach/ls8/translate"
)

var f = translate.From

// ErrImageByte locates a malformed byte in a bytecode listing.
type ErrImageByte struct {
	LineNo int
	Token  string
}

func (err ErrImageByte) Error() string {
	return f("line %d '%v' is not a byte", err.LineNo, err.Token)
}
