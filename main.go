package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/paulsnar/sd/internal/batch"
	"github.com/paulsnar/sd/internal/fileinput"
	"github.com/paulsnar/sd/internal/logio"
)

func main() {
	var (
		stackLimit uint
		timeout    time.Duration
		trace      bool
		dump       bool
		batchMode  bool
	)
	flag.UintVar(&stackLimit, "stack-limit", 0, "bound the operand stack (0 = unbounded)")
	flag.DurationVar(&timeout, "timeout", 0, "kill the run after a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging of each fetched instruction")
	flag.BoolVar(&dump, "dump", false, "print a state dump after execution")
	flag.BoolVar(&batchMode, "batch", false, "treat every argument as an independent program, run them concurrently")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	names := flag.Args()
	if len(names) == 0 {
		// No program named is a usage error, not an implicit read
		// from stdin; pass "-" explicitly to read a program from
		// stdin instead.
		log.Errorf("missing program argument")
		return
	}

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if batchMode {
		runBatch(ctx, &log, names, stackLimit)
		return
	}

	if len(names) > 1 {
		log.Errorf("only one program may be given without -batch")
		return
	}

	code, err := fileinput.Load(names[0], os.Stdin)
	if err != nil {
		log.Fatalf(exitCodeForLoadError(err), "%v", err)
		return
	}

	vm := New(
		WithCode(code),
		WithOutput(os.Stdout),
		WithStackLimit(int(stackLimit)),
		traceOption(&log, trace),
	)
	defer vm.Close()

	if dump {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		defer vmDumper{vm: vm, out: lw}.dump()
	}

	if err := vm.Run(ctx); err != nil {
		log.Fatalf(exitCodeForRunError(err), "%v", err)
	}
}

// exitCodeForLoadError distinguishes a failure to open the named
// program file (exit 2) from every other failure reading it (exit 4),
// including any error reading from stdin, which has no open step to
// fail. os.ReadFile reports an open failure as a *fs.PathError with
// Op == "open".
func exitCodeForLoadError(err error) int {
	var pe *fs.PathError
	if errors.As(err, &pe) && pe.Op == "open" {
		return 2
	}
	return 4
}

// exitCodeForRunError reports exit 3 ("cannot allocate") when the VM
// faulted because a container failed to grow, and exit 2 for every
// other runtime fault.
func exitCodeForRunError(err error) int {
	var re runErr
	if errors.As(err, &re) && re.Status() == StatusMem {
		return 3
	}
	return 2
}

// traceOption returns a WithLogf option wired to level "TRACE" on log,
// or nil (a no-op) when trace is false.
func traceOption(log *logio.Logger, trace bool) VMOption {
	if !trace {
		return nil
	}
	return WithLogf(log.Leveledf("TRACE"))
}

// runBatch loads every named program and runs them concurrently via
// internal/batch, one fresh VM per program, then reports each result in
// argument order.
func runBatch(ctx context.Context, log *logio.Logger, names []string, stackLimit uint) {
	jobs := make([]batch.Job, 0, len(names))
	for _, name := range names {
		code, err := fileinput.Load(name, os.Stdin)
		if err != nil {
			log.Fatalf(exitCodeForLoadError(err), "%s: %v", name, err)
			return
		}
		jobs = append(jobs, batch.Job{Name: name, Code: code})
	}

	results, _ := batch.Run(ctx, jobs, func(ctx context.Context, code []byte) ([]byte, error) {
		var out bytes.Buffer
		vm := New(WithCode(code), WithOutput(&out), WithStackLimit(int(stackLimit)))
		defer vm.Close()
		err := vm.Run(ctx)
		return out.Bytes(), err
	})

	for _, res := range results {
		if res.Err != nil {
			log.Fatalf(exitCodeForRunError(res.Err), "%s: %v", res.Name, res.Err)
			continue
		}
		fmt.Printf("%s: %d bytes\n", res.Name, len(res.Output))
		os.Stdout.Write(res.Output)
	}
}
