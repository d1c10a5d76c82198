package main

import (
	"fmt"
	"log"
	"time"

	"gochip8/pkg/cpu"
	"gochip8/pkg/peripherals"
	"gochip8/pkg/utils"
)

func main() {
	cfg := parseArgs()

	rom, err := utils.ReadROM(cfg.ROM)
	if err != nil {
		log.Fatalf("Failed to load ROM: %v", err)
	}

	events, err := parseKeyScript(cfg.Keys)
	if err != nil {
		log.Fatal(err)
	}

	var vm *cpu.CPU
	if cfg.Seed != 0 {
		vm = cpu.NewCPU(cfg.Seed)
	} else {
		vm = cpu.NewCPU()
	}
	if err := vm.Load(rom); err != nil {
		log.Fatalf("Failed to load ROM: %v", err)
	}
	vm.Keyboard.SetMapping(cpu.DefaultKeyMap)
	vm.MountBuzzer(peripherals.NewLogBuzzer(nil))
	if cfg.Trace {
		vm.Trace = func(pc uint16, in cpu.Instruction) {
			log.Printf("%03X  %04X  %s", pc, in.Raw, in)
		}
	}

	var tick <-chan time.Time
	if cfg.Realtime {
		ticker := time.NewTicker(time.Second / 60)
		defer ticker.Stop()
		tick = ticker.C
	}

	runner := NewRunner(vm, cfg.Cycles, events)
	runErr := runner.Run(cfg.Frames, tick)

	if !cfg.Quiet {
		fmt.Print(vm.Screen.String())
	}
	fmt.Printf("frames=%d cycles=%d seed=%d waiting=%v\n", runner.Frame(), vm.Cycles(), vm.Seed(), vm.Waiting)

	if cfg.Screenshot != "" {
		if err := vm.SaveScreenshot(cfg.Screenshot, cfg.Scale); err != nil {
			log.Fatal(err)
		}
	}

	if runErr != nil {
		log.Fatalf("Machine halted: %v", runErr)
	}
}
