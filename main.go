//go:build !js

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gochip8/pkg/asm"
	"gochip8/pkg/cpu"
	"gochip8/pkg/utils"
)

func main() {
	inPath := flag.String("in", "", "input assembly file path")
	outPath := flag.String("out", "", "output ROM file path (default: input with .ch8 extension)")
	runProgram := flag.Bool("run", false, "run the generated ROM headless")
	runBinPath := flag.String("run-bin", "", "run an existing ROM headless")
	frames := flag.Int("frames", 60, "frames to run with -run or -run-bin")
	cycles := flag.Int("cycles", 10, "instructions per frame")
	seed := flag.Int64("seed", 1, "random number seed")
	flag.Parse()

	if *runProgram && *runBinPath != "" {
		fmt.Fprintln(os.Stderr, "use either -run or -run-bin, not both")
		os.Exit(2)
	}

	assembledOutput := ""
	if *inPath != "" {
		source, err := utils.ReadSource(*inPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read input file %q: %v\n", *inPath, err)
			os.Exit(1)
		}

		code, _, err := asm.Assemble(source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "assembly failed: %v\n", err)
			os.Exit(1)
		}

		output := *outPath
		if output == "" {
			output = defaultOutputPath(*inPath)
		}

		if err := utils.WriteROM(output, code); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write ROM file %q: %v\n", output, err)
			os.Exit(1)
		}

		fmt.Printf("assembled %d bytes -> %s\n", len(code), output)
		assembledOutput = output
	}

	if *inPath == "" && *runBinPath == "" && !*runProgram {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in to assemble, -run to run assembled output, or -run-bin <file> to run an existing ROM")
		flag.Usage()
		os.Exit(2)
	}

	runTarget := ""
	switch {
	case *runBinPath != "":
		runTarget = *runBinPath
	case *runProgram:
		if assembledOutput == "" {
			fmt.Fprintln(os.Stderr, "-run requires -in, or use -run-bin <file>")
			os.Exit(2)
		}
		runTarget = assembledOutput
	default:
		return
	}

	if err := runBinary(os.Stdout, runTarget, *frames, *cycles, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "run failed for %q: %v\n", runTarget, err)
		os.Exit(1)
	}
}

func defaultOutputPath(inPath string) string {
	ext := filepath.Ext(inPath)
	if ext == "" {
		return inPath + ".ch8"
	}
	return strings.TrimSuffix(inPath, ext) + ".ch8"
}

// runBinary runs the ROM at path for the given number of frames and writes
// the final register state to w.
func runBinary(w io.Writer, path string, frames, cycles int, seed int64) error {
	rom, err := utils.ReadROM(path)
	if err != nil {
		return err
	}

	vm := cpu.NewCPU(seed)
	if err := vm.Load(rom); err != nil {
		return err
	}

	var runErr error
	for i := 0; i < frames && runErr == nil; i++ {
		runErr = vm.RunFrame(cycles)
	}

	fmt.Fprintf(w,
		"run complete (%s): PC=0x%03X I=0x%03X SP=%d DT=%d ST=%d waiting=%t cycles=%d\n",
		path, vm.PC, vm.I, vm.SP, vm.DT, vm.ST, vm.Waiting, vm.Cycles(),
	)
	for i, v := range vm.V {
		fmt.Fprintf(w, "V%X=0x%02X", i, v)
		if i%8 == 7 {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " ")
		}
	}

	return runErr
}
