package main

import (
	"io"

	"github.com/paulsnar/sd/internal/flushio"
)

// VM holds all interpreter state for one run: the operand stack, the
// subroutine table, the call stack, the result buffer, the scratch
// register, the instruction pointer, and the immutable code buffer
// supplied by the host. All of it is created fresh by New and mutated
// only by the interpreter loop in opcodes.go/interp.go.
type VM struct {
	logging

	code []byte
	prog int64 // instruction pointer

	stack  Stack
	subs   SubroutineTable
	calls  CallStack
	result ResultBuffer

	register int64

	out     flushio.WriteFlusher
	closers []io.Closer
}

// Close releases any closers registered by output options (e.g. a
// file passed to WithOutput), in reverse registration order.
func (vm *VM) Close() (err error) {
	for i := len(vm.closers) - 1; i >= 0; i-- {
		if cerr := vm.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// fetch returns the byte at the instruction pointer and whether the
// pointer is still within the code buffer. The one-past-end position
// is a valid instruction pointer (straight-line execution or a jump
// can reach it) but fetch reports !ok there, which the run loop treats
// as normal termination.
func (vm *VM) fetch() (b byte, ok bool) {
	if vm.prog < 0 || vm.prog >= int64(len(vm.code)) {
		return 0, false
	}
	return vm.code[vm.prog], true
}
