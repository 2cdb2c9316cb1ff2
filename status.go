package main

import "fmt"

// Status is the outcome of a single interpreter run, or of stepping it
// forward by one instruction. It mirrors the sd_status enum in the
// original taxonomy: ok/halt are not errors, the rest are.
type Status uint8

const (
	// StatusOK indicates ongoing, unterminated execution.
	StatusOK Status = iota
	// StatusHalt indicates normal termination: the h opcode, running
	// off the end of code, or } popping an empty call stack.
	StatusHalt
	// StatusState indicates operand underflow, an out-of-range
	// indexed access, or another structural precondition violation.
	StatusState
	// StatusType indicates an operand's runtime kind did not match
	// what the opcode required.
	StatusType
	// StatusSubroutine indicates a call or jump targeted an
	// undefined letter.
	StatusSubroutine
	// StatusMem indicates a container failed to grow.
	StatusMem
	// StatusOverflow indicates the operand stack's size counter
	// wrapped.
	StatusOverflow
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusHalt:
		return "halt"
	case StatusState:
		return "bad state"
	case StatusType:
		return "type error"
	case StatusSubroutine:
		return "call to nonexistent subroutine"
	case StatusMem:
		return "out of memory"
	case StatusOverflow:
		return "stack overflow"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// runErr is the error type returned (via panic -> halt, see core.go)
// for every non-ok, non-halt status. It carries the instruction
// pointer where the fault occurred, so the host can report it without
// the VM needing to know how diagnostics are worded.
type runErr struct {
	status Status
	ip     int64
}

func (e runErr) Error() string {
	return fmt.Sprintf("halted: %v (at ip = %d)", e.status, e.ip)
}

// Status reports the Status this error carries, satisfying the
// `interface{ Status() Status }` pattern used by errors.As callers
// that want the taxonomy without a type switch.
func (e runErr) Status() Status { return e.status }

// newRunErr builds a runErr for the given status at the given
// instruction pointer.
func newRunErr(status Status, ip int64) runErr {
	return runErr{status: status, ip: ip}
}
