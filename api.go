package main

import (
	"context"
	"errors"
	"io"
	"io/ioutil"

	"github.com/paulsnar/sd/internal/flushio"
	"github.com/paulsnar/sd/internal/panicerr"
)

// New constructs a VM, applying opts over a set of sane defaults (no
// code, output discarded).
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Run executes the VM's loaded code to termination, isolating the
// interpreter loop in its own goroutine (see internal/panicerr) so
// that a stray panic or runtime.Goexit never corrupts the caller's
// goroutine. It returns nil on normal termination (StatusHalt), and
// the underlying error for every other terminal status.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("VM", func() error {
		vm.prog = 0
		vm.run(ctx)
		return nil
	})
	if err == nil {
		return nil
	}
	var he haltError
	if errors.As(err, &he) {
		return he.error
	}
	return err
}

// VMOption configures a VM at construction time.
type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withOutput(ioutil.Discard),
)

// VMOptions combines any number of options into one, flattening
// nested combinations.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(vm *VM) {}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

// WithCode loads the program bytes the VM will execute. The code
// buffer is treated as immutable for the duration of the run.
func WithCode(code []byte) VMOption { return withCode(code) }

// WithOutput sets the sink the result buffer is flushed to at
// termination.
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

// WithTee additionally mirrors output to w, without replacing the
// primary output sink.
func WithTee(w io.Writer) VMOption { return withTee(w) }

// WithStackLimit bounds the operand stack's growth through push;
// exceeding it is reported as StatusMem. Zero (the default) means
// unbounded. The w opcode's duplicate of the top value is not checked
// against the limit.
func WithStackLimit(limit int) VMOption { return withStackLimit(limit) }

// WithLogf enables trace logging of every fetched instruction.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) { vm.logfn = logfn }

type codeOption []byte

func withCode(code []byte) codeOption { return codeOption(code) }

func (c codeOption) apply(vm *VM) { vm.code = []byte(c) }

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type stackLimitOption int

func withOutput(w io.Writer) outputOption  { return outputOption{w} }
func withTee(w io.Writer) teeOption        { return teeOption{w} }
func withStackLimit(n int) stackLimitOption { return stackLimitOption(n) }

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (lim stackLimitOption) apply(vm *VM) {
	vm.stack.limit = int(lim)
}
