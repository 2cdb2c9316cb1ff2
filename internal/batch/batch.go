// Package batch runs a set of independent programs concurrently, one
// goroutine and one fresh interpreter instance per program. Programs
// share no state: the only thing batch.Run coordinates is fanning the
// jobs out and collecting their results back in original order.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job names one program to run.
type Job struct {
	Name string
	Code []byte
}

// Result is one Job's outcome.
type Result struct {
	Name   string
	Output []byte
	Err    error
}

// RunFunc executes one program to completion, returning its flushed
// output. Implementations are expected to construct a fresh, unshared
// interpreter per call -- batch.Run never calls RunFunc with the same
// Job twice, but it may call it for distinct Jobs concurrently.
type RunFunc func(ctx context.Context, code []byte) ([]byte, error)

// Run executes every job in jobs concurrently, waiting for all of them
// to return before returning. Results are returned in the same order
// as jobs, regardless of completion order. The first job error cancels
// the context passed to the remaining RunFunc calls, matching
// errgroup.WithContext's usual fail-fast semantics, whatever ctx the
// caller passed in; every job's Result is still reported, and that
// first error is also Run's own error return.
func Run(ctx context.Context, jobs []Job, run RunFunc) ([]Result, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]Result, len(jobs))

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			out, err := run(ctx, job.Code)
			results[i] = Result{Name: job.Name, Output: out, Err: err}
			return err
		})
	}

	err := g.Wait()
	return results, err
}
