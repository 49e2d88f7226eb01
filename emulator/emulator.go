// Package emulator wires an LS-8 Cpu to its devices and a loaded
// program, and drives the run loop.
package emulator

import (
	"fmt"
	"iter"
	"maps"
	"os"

	"github.com/stackmach/ls8/cpu"
	"github.com/stackmach/ls8/internal"
	"github.com/stackmach/ls8/io"
)

var _emulator_defines = map[string]string{
	"MEM_SIZE": fmt.Sprintf("%v", cpu.MEM_SIZE),
}

// Emulator state. CPU + devices + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded listing.

	Console  io.Console   // PRN/PRA output device.
	Keyboard io.Keys      // Buffered keyboard device.
	Clock    io.WallClock // Wall-clock timer source.
}

// NewEmulator creates a new emulator with console output on stdout.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Console.Output = os.Stdout

	emu.Cpu.Console = &emu.Console
	emu.Cpu.Keyboard = &emu.Keyboard
	emu.Cpu.Clock = &emu.Clock

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset resets the machine and loads the program image at address 0.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	err = emu.Cpu.Load(emu.Program.Binary())

	return
}

// LineNo returns the source line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.PC)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	done, err = emu.Cpu.Tick()

	return
}

// Run ticks the emulator until the program halts or faults.
func (emu *Emulator) Run() (err error) {
	for {
		done, err := emu.Tick()
		if err != nil || done {
			return err
		}
	}
}
