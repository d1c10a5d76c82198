package cpu

// StackDepth is the number of return-address slots.
const StackDepth = 16

// Stack holds return addresses. The stack pointer lives in the register file
// and is passed in by the caller; 0 means empty.
type Stack [StackDepth]uint16

// Push increments sp and stores val in the new top slot.
func (s *Stack) Push(sp *uint8, val uint16) {
	next := int(*sp) + 1
	if next >= StackDepth {
		fault(FaultStack, next, "overflow at depth %d", next)
	}
	*sp = uint8(next)
	s[next] = val
}

// Pop returns the top slot and decrements sp.
func (s *Stack) Pop(sp *uint8) uint16 {
	top := int(*sp)
	if top == 0 {
		fault(FaultStack, top, "underflow")
	}
	if top >= StackDepth {
		fault(FaultStack, top, "stack pointer %d out of range", top)
	}
	val := s[top]
	*sp = uint8(top - 1)
	return val
}
