package main

import "context"

// run is the fetch-decode-dispatch loop. It terminates by panicking
// through halt (see core.go): on success the panic carries a nil
// error, on a fault it carries a runErr. api.go's Run recovers that
// panic and turns it back into a normal error return.
func (vm *VM) run(ctx context.Context) {
	for {
		if err := ctx.Err(); err != nil {
			vm.halt(err)
		}

		if vm.logfn != nil {
			if b, ok := vm.fetch(); ok {
				vm.logf("@", "%d: %q stack=%v calls=%v r=%d",
					vm.prog, string(b), vm.stack.values, vm.calls.addrs, vm.register)
			}
		}

		status, jumped := vm.step()

		switch status {
		case StatusOK:
			if !jumped {
				vm.prog++
			}
		case StatusHalt:
			vm.halt(nil)
		default:
			vm.halt(newRunErr(status, vm.prog))
		}
	}
}
