package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for the LS-8 instruction set,
// with a final linking pass for label references.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of generated listing lines.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to memory addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// regMap maps register names to register numbers, including the
// dedicated-role aliases.
var regMap = map[string]byte{
	"r0": 0,
	"r1": 1,
	"r2": 2,
	"r3": 3,
	"r4": 4,
	"r5": 5,
	"r6": 6,
	"r7": 7,
	"im": REG_IM,
	"is": REG_IS,
	"sp": REG_SP,
}

// labelRe matches a bare identifier usable as a label.
var labelRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// valueOf returns the byte value of a simple word. Negative values are
// stored as their two's complement.
func (asm *Assembler) valueOf(word string) (value byte, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	if word[0] == '\'' {
		// Character quotes should have been expanded into
		// values in parseLine()
		err = ErrParseCharacter(word[1 : len(word)-1])
		return
	}

	v64, err := strconv.ParseInt(word, 0, 16)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}
	if v64 < -0x80 || v64 > 0xff {
		err = ErrParseNumber(word)
		return
	}

	value = byte(v64)

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value byte, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value8 byte
		value8, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(value8))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = byte(st_int64)
	return
}

// parseLine expands a single source line into operand words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do 'x' evaluations
	re := regexp.MustCompile(`'\\?[^']'`)
	line = re.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "0":
				str = "\x00"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})

	// Do $() evaluations
	re = regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	if err != nil {
		return
	}

	// Commas and spaces both separate operands.
	line = strings.ReplaceAll(line, ",", " ")

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	return
}

// parseWords assembles the words of a line into bytes.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := slices.Clone(words)

	line := Line{
		LineNo: lineno,
		Addr:   asm.currentAddr(),
		Words:  initial_words,
	}

	// .byte VALUE...
	if words[0] == ".byte" {
		if len(words) < 2 {
			err = ErrByteSyntax
			return
		}
		for _, word := range words[1:] {
			var value byte
			value, err = asm.valueOf(word)
			if err != nil {
				return
			}
			line.Bytes = append(line.Bytes, value)
		}
		asm.Lines = append(asm.Lines, line)
		return
	}

	op, ok := opcodeOf[strings.ToLower(words[0])]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	args := words[1:]
	if len(args) < op.Operands() {
		err = ErrOperandMissing
		return
	}
	if len(args) > op.Operands() {
		err = ErrOperandExtra
		return
	}

	line.Bytes = append(line.Bytes, byte(op))

	for n, arg := range args {
		// LDI's second operand is an immediate or a label;
		// everything else names a register.
		if op == OP_LDI && n == 1 {
			var value byte
			value, err = asm.valueOf(arg)
			if err != nil {
				if !labelRe.MatchString(arg) {
					return
				}
				// Patched by the link pass.
				err = nil
				line.LinkLabel = arg
				value = 0
			}
			line.Bytes = append(line.Bytes, value)
			continue
		}

		reg, ok := regMap[strings.ToLower(arg)]
		if !ok {
			err = ErrRegisterInvalid
			return
		}
		line.Bytes = append(line.Bytes, reg)
	}

	asm.Lines = append(asm.Lines, line)

	return
}

// currentAddr gets the next assembly address.
func (asm *Assembler) currentAddr() int {
	if len(asm.Lines) == 0 {
		return 0
	}

	last := asm.Lines[len(asm.Lines)-1]

	return last.Addr + len(last.Bytes)
}

// Parse parses an input stream into an assembled Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Lines = asm.Lines[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v", lineno, text)
		}

		line = text
		for _, mark := range []string{"#", ";"} {
			line, _, _ = strings.Cut(line, mark)
		}
		line = strings.TrimSpace(line)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of label references.
	for n := range asm.Lines {
		ln := &asm.Lines[n]

		if len(ln.LinkLabel) == 0 {
			continue
		}
		addr, ok := asm.Label[ln.LinkLabel]
		if !ok {
			lineno, line = ln.LineNo, strings.Join(ln.Words, " ")
			err = ErrLabelMissing(ln.LinkLabel)
			return
		}
		ln.Bytes[len(ln.Bytes)-1] = byte(addr)
	}

	prog = &Program{
		Lines: slices.Clone(asm.Lines),
	}

	return
}
