package io

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ReadImage parses a bytecode listing into a raw image, one byte per
// line. A token of exactly eight 0/1 characters is binary (the classic
// .ls8 listing format); anything else follows Go literal rules (0x...,
// 0b..., decimal). '#' and ';' start comments; blank lines are
// ignored.
func ReadImage(input io.Reader) (image []byte, err error) {
	scanner := bufio.NewScanner(input)

	var lineno int
	for scanner.Scan() {
		line := scanner.Text()
		lineno += 1

		for _, mark := range []string{"#", ";"} {
			line, _, _ = strings.Cut(line, mark)
		}
		token := strings.TrimSpace(line)
		if len(token) == 0 {
			continue
		}

		var value uint64
		if len(token) == 8 && strings.Trim(token, "01") == "" {
			value, err = strconv.ParseUint(token, 2, 8)
		} else {
			value, err = strconv.ParseUint(token, 0, 8)
		}
		if err != nil {
			err = ErrImageByte{LineNo: lineno, Token: token}
			return
		}

		image = append(image, byte(value))
	}

	err = scanner.Err()

	return
}
