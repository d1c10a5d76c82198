package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	ROM        string // Path to the program image to load.
	Frames     int    // Number of 60 Hz frames to run.
	Cycles     int    // Instructions executed per frame.
	Seed       int64  // Random seed; 0 seeds from the clock.
	Trace      bool   // Log every executed instruction?
	Keys       string // Scripted key presses, see parseKeyScript.
	Screenshot string // PNG written after the last frame, if set.
	Scale      int    // Screenshot pixel scale.
	Realtime   bool   // Pace frames at 60 Hz instead of running flat out.
	Quiet      bool   // Skip printing the screen.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
func parseArgs() *Config {
	var c Config
	c.Frames = 60
	c.Cycles = 10
	c.Scale = 4

	flag.Usage = func() {
		fmt.Printf("%s [options] <rom file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.IntVar(&c.Frames, "frames", c.Frames, "Number of frames to run.")
	flag.IntVar(&c.Cycles, "cycles", c.Cycles, "Instructions executed per frame.")
	flag.Int64Var(&c.Seed, "seed", c.Seed, "Random number seed. 0 uses the clock.")
	flag.BoolVar(&c.Trace, "trace", c.Trace, "Print instruction trace data.")
	flag.StringVar(&c.Keys, "keys", c.Keys, "Scripted keys as frame:key[:hold], comma separated (e.g. 10:5,40:a:3).")
	flag.StringVar(&c.Screenshot, "screenshot", c.Screenshot, "Write a PNG of the final screen to this file.")
	flag.IntVar(&c.Scale, "scale", c.Scale, "Pixel scale factor for the screenshot.")
	flag.BoolVar(&c.Realtime, "realtime", c.Realtime, "Run frames at 60 Hz.")
	flag.BoolVar(&c.Quiet, "quiet", c.Quiet, "Do not print the final screen.")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if c.Frames < 0 || c.Cycles < 1 || c.Scale < 1 {
		fmt.Fprintln(os.Stderr, "frames must not be negative; cycles and scale must be positive")
		os.Exit(1)
	}

	c.ROM = flag.Arg(0)
	return &c
}
