package asm_test

import (
	"testing"

	"gochip8/pkg/asm"
	"gochip8/pkg/cpu"
)

// boot assembles src, loads it into a fresh seeded CPU and returns it.
func boot(t *testing.T, src string) *cpu.CPU {
	t.Helper()
	rom, _, err := asm.Assemble(src)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	c := cpu.NewCPU(1)
	if err := c.Load(rom); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

func TestRunCountdown(t *testing.T) {
	c := boot(t, `
		LD V0, 10
		LD V1, 0
	loop:
		ADD V1, V0
		ADD V0, 0xFF
		SE V0, 0
		JP loop
	halt:
		JP halt
	`)

	if _, err := c.RunCycles(200); err != nil {
		t.Fatalf("RunCycles: %v", err)
	}
	if c.V[1] != 55 {
		t.Errorf("V1: expected 55, got %d", c.V[1])
	}
	if c.PC != 0x20C {
		t.Errorf("PC: expected to spin at 0x20C, got 0x%03X", c.PC)
	}
}

func TestRunDrawDigits(t *testing.T) {
	c := boot(t, `
		LD V0, 0
		LD V1, 0
		LD V2, 8
		LD F, V2
		DRW V0, V1, 5
		DRW V0, V1, 5
		LD V3, VF
		DRW V0, V1, 5
	halt:
		JP halt
	`)

	if _, err := c.RunCycles(20); err != nil {
		t.Fatalf("RunCycles: %v", err)
	}
	if c.V[3] != 1 {
		t.Errorf("second draw should collide, V3=%d", c.V[3])
	}
	if c.V[cpu.RegF] != 0 {
		t.Errorf("third draw on a blank area should not collide, VF=%d", c.V[cpu.RegF])
	}

	// Glyph 8 is F0 90 F0 90 F0.
	rows := []byte{0xF0, 0x90, 0xF0, 0x90, 0xF0}
	for y, bits := range rows {
		for x := 0; x < 8; x++ {
			want := bits&(0x80>>x) != 0
			if got := c.Screen.IsSet(x, y); got != want {
				t.Errorf("pixel (%d, %d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestRunSubroutineAndBCD(t *testing.T) {
	c := boot(t, `
		LD V5, 156
		CALL store
	halt:
		JP halt

	store:
		LD I, digits
		LD B, V5
		LD V2, [I]
		RET

	digits:
		.BYTE 0, 0, 0
	`)

	if _, err := c.RunCycles(20); err != nil {
		t.Fatalf("RunCycles: %v", err)
	}
	if c.V[0] != 1 || c.V[1] != 5 || c.V[2] != 6 {
		t.Errorf("digits: got %d %d %d", c.V[0], c.V[1], c.V[2])
	}
	if c.SP != 0 {
		t.Errorf("SP: expected 0 after RET, got %d", c.SP)
	}
}

func TestRunWaitForKey(t *testing.T) {
	c := boot(t, `
		LD V4, K
		LD V5, 1
	halt:
		JP halt
	`)

	n, err := c.RunCycles(50)
	if err != nil {
		t.Fatalf("RunCycles: %v", err)
	}
	if n != 1 || !c.Waiting {
		t.Fatalf("expected to stop waiting after 1 cycle, ran %d, Waiting=%v", n, c.Waiting)
	}

	c.Keyboard.SetMapping(cpu.DefaultKeyMap)
	if !c.HostKeyDown('c') {
		t.Fatal("'c' not mapped")
	}
	if _, err := c.RunCycles(5); err != nil {
		t.Fatalf("RunCycles: %v", err)
	}
	if c.V[4] != 0xC || c.V[5] != 1 {
		t.Errorf("after key: V4=0x%X V5=%d", c.V[4], c.V[5])
	}
}

func TestRunDelayTimer(t *testing.T) {
	c := boot(t, `
		LD V0, 3
		LD DT, V0
	wait:
		LD V1, DT
		SE V1, 0
		JP wait
		LD V2, 0xAA
	halt:
		JP halt
	`)

	for frame := 0; frame < 10; frame++ {
		if _, err := c.RunCycles(10); err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}
		c.Tick()
	}
	if c.V[2] != 0xAA {
		t.Errorf("program did not leave the wait loop, V2=0x%02X", c.V[2])
	}
}

func TestRunStackOverflowFaults(t *testing.T) {
	c := boot(t, `
	recurse:
		CALL recurse
	`)

	_, err := c.RunCycles(100)
	f, ok := err.(*cpu.Fault)
	if !ok {
		t.Fatalf("expected *cpu.Fault, got %v", err)
	}
	if f.Kind != cpu.FaultStack || !c.Halted {
		t.Errorf("expected halted stack fault, got %v (halted=%v)", f, c.Halted)
	}
}
