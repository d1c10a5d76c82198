package cpu

// Buzzer receives the edges of the sound timer. Start is called on the first
// tick with a non-zero sound timer, Stop on the tick where it reaches zero.
type Buzzer interface {
	Start()
	Stop()
}
