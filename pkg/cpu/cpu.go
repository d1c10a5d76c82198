package cpu

import (
	"math/rand"
	"time"
)

// RegF is the index of the flag register.
const RegF = 0xF

// TraceFunc receives every instruction just before it executes.
type TraceFunc func(pc uint16, in Instruction)

// CPU is a complete machine: registers, memory, stack, screen and keypad.
type CPU struct {
	V  [16]byte
	I  uint16
	PC uint16
	SP uint8
	DT byte
	ST byte

	Memory   Memory
	Stack    Stack
	Screen   Screen
	Keyboard Keyboard

	// Waiting is set by LD Vx, K. Step does nothing until KeyDown stores the
	// key in V[WaitRegister] and clears it.
	Waiting      bool
	WaitRegister uint8

	// Halted is set once a fault has been raised. The machine cannot resume.
	Halted bool

	// Palette selects the colors used by the framebuffer helpers.
	Palette Palette

	// Trace, if set, is called for every executed instruction.
	Trace TraceFunc

	err     *Fault
	buzzer  Buzzer
	buzzing bool
	rng     *rand.Rand
	seed    int64
	cycles  uint64
}

// NewCPU creates a machine with the font installed and PC at ProgramStart.
// An optional seed fixes the random number generator; without one the seed
// is taken from the clock.
func NewCPU(seed ...int64) *CPU {
	s := time.Now().UnixNano()
	if len(seed) > 0 {
		s = seed[0]
	}
	c := &CPU{
		Palette: DefaultPalette,
		seed:    s,
		rng:     rand.New(rand.NewSource(s)),
	}
	c.Memory.reset()
	c.Keyboard.Reset()
	c.PC = ProgramStart
	return c
}

// Seed returns the seed of the random number generator.
func (c *CPU) Seed() int64 {
	return c.seed
}

// Cycles returns the number of instructions executed so far.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Err returns the fault that halted the machine, or nil.
func (c *CPU) Err() error {
	if c.err == nil {
		return nil
	}
	return c.err
}

// Load copies program to ProgramStart and points PC at it. A program larger
// than the space above ProgramStart is rejected with a load-size fault.
func (c *CPU) Load(program []byte) error {
	if err := c.Memory.Load(ProgramStart, program); err != nil {
		return err
	}
	c.PC = ProgramStart
	return nil
}

// MountBuzzer attaches the sink for sound timer edges.
func (c *CPU) MountBuzzer(b Buzzer) {
	c.buzzer = b
}

// Step fetches, decodes and executes one instruction. It returns the fault
// that stopped the machine, if any. While waiting for a key it does nothing.
func (c *CPU) Step() (err error) {
	if c.Halted {
		return c.Err()
	}
	if c.Waiting {
		return nil
	}

	pc := c.PC
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Fault)
			if !ok {
				panic(r)
			}
			f.PC = pc
			c.err = f
			c.Halted = true
			err = f
		}
	}()

	opcode := c.Memory.GetWord(int(c.PC))
	c.PC += 2

	in := Decode(opcode)
	if c.Trace != nil {
		c.Trace(pc, in)
	}
	c.execute(in)
	c.cycles++
	return nil
}

// RunCycles executes up to n instructions, stopping early when the machine
// starts waiting for a key or faults. It returns the number executed.
func (c *CPU) RunCycles(n int) (int, error) {
	done := 0
	for done < n {
		if c.Waiting {
			break
		}
		if err := c.Step(); err != nil {
			return done, err
		}
		done++
	}
	return done, nil
}

// RunFrame executes one 60 Hz frame: up to cycles instructions followed by a
// timer tick. Timers keep running while the machine waits for a key.
func (c *CPU) RunFrame(cycles int) error {
	if _, err := c.RunCycles(cycles); err != nil {
		return err
	}
	c.Tick()
	return nil
}

// KeyDown presses a virtual key. If the machine is waiting for a key, the key
// is stored in the wait register and execution resumes. A key outside 0-F
// panics with a keyboard *Fault.
func (c *CPU) KeyDown(key int) {
	c.Keyboard.KeyDown(key)
	if c.Waiting {
		c.V[c.WaitRegister] = byte(key)
		c.Waiting = false
	}
}

// KeyUp releases a virtual key.
func (c *CPU) KeyUp(key int) {
	c.Keyboard.KeyUp(key)
}

// HostKeyDown maps a host key code and presses the result. It reports whether
// the code was mapped.
func (c *CPU) HostKeyDown(code int) bool {
	key := c.Keyboard.Map(code)
	if key == Unmapped {
		return false
	}
	c.KeyDown(key)
	return true
}

// HostKeyUp maps a host key code and releases the result.
func (c *CPU) HostKeyUp(code int) bool {
	key := c.Keyboard.Map(code)
	if key == Unmapped {
		return false
	}
	c.KeyUp(key)
	return true
}

// Tick advances both timers by one 60 Hz period. The delay timer counts down
// to zero. The sound timer counts down one per tick while the buzzer sounds;
// Tick reports whether this tick was a sounding one.
func (c *CPU) Tick() bool {
	if c.DT > 0 {
		c.DT--
	}

	if c.ST == 0 {
		c.stopBuzz()
		return false
	}

	if !c.buzzing {
		c.buzzing = true
		if c.buzzer != nil {
			c.buzzer.Start()
		}
	}
	c.ST--
	if c.ST == 0 {
		c.stopBuzz()
	}
	return true
}

func (c *CPU) stopBuzz() {
	if !c.buzzing {
		return
	}
	c.buzzing = false
	if c.buzzer != nil {
		c.buzzer.Stop()
	}
}
