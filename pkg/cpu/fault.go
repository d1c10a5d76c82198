package cpu

import "fmt"

// FaultKind classifies a fatal machine fault.
type FaultKind int

const (
	FaultMemory FaultKind = iota
	FaultStack
	FaultScreen
	FaultKeyboard
	FaultLoadSize
)

func (k FaultKind) String() string {
	switch k {
	case FaultMemory:
		return "memory"
	case FaultStack:
		return "stack"
	case FaultScreen:
		return "screen"
	case FaultKeyboard:
		return "keyboard"
	case FaultLoadSize:
		return "load size"
	}
	return "unknown"
}

// Fault is a fatal bounds violation. Components raise it with panic; Step
// recovers it and halts the machine.
type Fault struct {
	Kind FaultKind
	PC   uint16 // address of the faulting instruction, 0 outside Step
	Addr int    // offending index or coordinate
	Msg  string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%04x: %s fault: %s", f.PC, f.Kind, f.Msg)
}

func fault(kind FaultKind, addr int, format string, args ...interface{}) {
	panic(&Fault{
		Kind: kind,
		Addr: addr,
		Msg:  fmt.Sprintf(format, args...),
	})
}
