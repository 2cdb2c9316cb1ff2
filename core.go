package main

import (
	"fmt"
	"strings"
)

// haltError wraps the error that caused interpreter termination so it
// can travel up through a panic/recover without being confused for an
// ordinary Go panic value. A nil-wrapped haltError means normal
// termination (StatusHalt), not a fault.
type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

// halt flushes the result buffer and any tee'd output, logs the
// cause, then panics with a haltError. It is the only place the
// interpreter loop unwinds non-locally; every opcode otherwise returns
// a Status that the loop turns into a call to halt.
func (vm *VM) halt(err error) {
	func() {
		defer func() { recover() }()
		if vm.out != nil {
			if _, ferr := vm.result.WriteTo(vm.out); err == nil {
				err = ferr
			}
			if ferr := vm.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	func() {
		defer func() { recover() }()
		if err != nil {
			vm.logf("#", "halt: %v", err)
		}
	}()

	panic(haltError{err})
}

// logging is a small leveled trace facility, used for the -trace CLI
// flag: each fetched instruction is logged through logfn if set.
type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
