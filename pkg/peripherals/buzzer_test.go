package peripherals

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"gochip8/pkg/cpu"
)

func TestLogBuzzer(t *testing.T) {
	var buf bytes.Buffer
	b := NewLogBuzzer(log.New(&buf, "", 0))

	b.Start()
	b.Start()
	if !b.Sounding() || b.Beeps() != 1 {
		t.Errorf("after Start: sounding=%v beeps=%d", b.Sounding(), b.Beeps())
	}
	b.Stop()
	b.Stop()
	if b.Sounding() {
		t.Error("still sounding after Stop")
	}

	got := buf.String()
	want := "buzzer: on (beep 1)\nbuzzer: off\n"
	if got != want {
		t.Errorf("log output: expected %q, got %q", want, got)
	}
}

func TestLogBuzzerDrivenByTick(t *testing.T) {
	var buf bytes.Buffer
	b := NewLogBuzzer(log.New(&buf, "", 0))

	c := cpu.NewCPU(1)
	c.MountBuzzer(b)

	for round := 0; round < 2; round++ {
		c.ST = 4
		for i := 0; i < 6; i++ {
			c.Tick()
		}
	}

	if b.Beeps() != 2 {
		t.Errorf("expected 2 beeps, got %d", b.Beeps())
	}
	if n := strings.Count(buf.String(), "buzzer: off"); n != 2 {
		t.Errorf("expected 2 off edges, got %d", n)
	}
}
