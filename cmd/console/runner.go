package main

import (
	"log"
	"time"

	"gochip8/pkg/cpu"
)

// Runner drives a machine frame by frame without a window.
type Runner struct {
	vm     *cpu.CPU
	cycles int
	events []keyEvent
	frame  int
}

func NewRunner(vm *cpu.CPU, cycles int, events []keyEvent) *Runner {
	return &Runner{vm: vm, cycles: cycles, events: events}
}

// Frame returns the number of frames run so far.
func (r *Runner) Frame() int {
	return r.frame
}

// Run executes frames frames. When tick is non-nil each frame waits for it.
func (r *Runner) Run(frames int, tick <-chan time.Time) error {
	for i := 0; i < frames; i++ {
		if tick != nil {
			<-tick
		}
		r.applyEvents()
		if err := r.vm.RunFrame(r.cycles); err != nil {
			return err
		}
		r.frame++
	}
	return nil
}

func (r *Runner) applyEvents() {
	for len(r.events) > 0 && r.events[0].frame <= r.frame {
		ev := r.events[0]
		r.events = r.events[1:]

		var mapped bool
		if ev.down {
			mapped = r.vm.HostKeyDown(ev.code)
		} else {
			mapped = r.vm.HostKeyUp(ev.code)
		}
		if !mapped {
			log.Printf("frame %d: key %q is not mapped", r.frame, rune(ev.code))
		}
	}
}
