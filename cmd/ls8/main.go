// Command ls8 runs LS-8 bytecode images and assembly sources.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/stackmach/ls8/cpu"
	"github.com/stackmach/ls8/emulator"
	"github.com/stackmach/ls8/io"
)

func main() {
	var compile string
	var trace bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble and run")
	flag.BoolVar(&trace, "t", false, "Trace machine state each instruction")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 || (flag.NArg() == 1 && len(compile) != 0) {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

	case flag.NArg() == 1:
		image_file := flag.Arg(0)
		inf, err := os.Open(image_file)
		if err != nil {
			log.Fatalf("%v: %v", image_file, err)
		}
		defer inf.Close()

		image, err := io.ReadImage(inf)
		if err != nil {
			log.Fatalf("%v: %v", image_file, err)
		}
		emu.Program = cpu.ImageProgram(image)

	default:
		log.Fatalf("%v: no program given", os.Args[0])
	}

	emu.Keyboard.Listen(os.Stdin)

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			log.Fatal(err)
		}
		if trace {
			fmt.Fprintf(os.Stderr, "TRACE: %v\n", emu.Cpu)
		}
	}
}
