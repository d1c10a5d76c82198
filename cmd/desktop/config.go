package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	ROM        string // Path to the program image to load.
	Scale      int    // Window pixels per machine pixel.
	Cycles     int    // Instructions executed per 60 Hz frame.
	Seed       int64  // Random seed; 0 seeds from the clock.
	Trace      bool   // Log every executed instruction?
	Screenshot string // File written when F12 is pressed.
	Layout     string // Host keyboard layout: "hex" or "cosmac".
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Scale = 10
	c.Cycles = 10
	c.Screenshot = "chip8.png"
	c.Layout = "hex"

	flag.Usage = func() {
		fmt.Printf("%s [options] <rom file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.IntVar(&c.Scale, "scale", c.Scale, "Pixel scale factor for the display.")
	flag.IntVar(&c.Cycles, "cycles", c.Cycles, "Instructions executed per frame.")
	flag.Int64Var(&c.Seed, "seed", c.Seed, "Random number seed. 0 uses the clock.")
	flag.BoolVar(&c.Trace, "trace", c.Trace, "Print instruction trace data.")
	flag.StringVar(&c.Screenshot, "screenshot", c.Screenshot, "PNG file written when F12 is pressed.")
	flag.StringVar(&c.Layout, "layout", c.Layout, "Keyboard layout: hex (0-9, a-f) or cosmac (1234/qwer/asdf/zxcv).")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if c.Scale < 1 || c.Cycles < 1 {
		fmt.Fprintln(os.Stderr, "scale and cycles must be positive")
		os.Exit(1)
	}

	if _, ok := layouts[c.Layout]; !ok {
		fmt.Fprintf(os.Stderr, "unknown layout %q\n", c.Layout)
		os.Exit(1)
	}

	c.ROM = flag.Arg(0)
	return &c
}
