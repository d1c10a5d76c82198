package peripherals

import (
	"log"

	"gochip8/pkg/cpu"
)

// LogBuzzer is a cpu.Buzzer that logs sound timer edges. Hosts without audio
// mount it so the buzzer is still observable.
type LogBuzzer struct {
	logger *log.Logger
	on     bool
	beeps  int
}

var _ cpu.Buzzer = (*LogBuzzer)(nil)

// NewLogBuzzer returns a buzzer writing to logger, or to the standard logger
// when logger is nil.
func NewLogBuzzer(logger *log.Logger) *LogBuzzer {
	return &LogBuzzer{logger: logger}
}

func (b *LogBuzzer) Start() {
	if b.on {
		return
	}
	b.on = true
	b.beeps++
	b.printf("buzzer: on (beep %d)", b.beeps)
}

func (b *LogBuzzer) Stop() {
	if !b.on {
		return
	}
	b.on = false
	b.printf("buzzer: off")
}

// Sounding reports whether the buzzer is between Start and Stop.
func (b *LogBuzzer) Sounding() bool { return b.on }

// Beeps returns the number of times the buzzer has started.
func (b *LogBuzzer) Beeps() int { return b.beeps }

func (b *LogBuzzer) printf(format string, args ...interface{}) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
