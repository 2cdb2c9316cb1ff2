package main

// skipBlock advances vm.prog from an opening { to its matching },
// honoring nesting: every further { raises depth, every } lowers it,
// starting at depth 1 for the outer {. On return vm.prog rests on the
// matching } itself; opBlock does not suppress the run loop's
// post-dispatch advance, so the next fetch actually lands one byte
// past that }, letting a block literal met by straight-line execution
// fall through into whatever code follows it.
//
// Running off the end of the code before the match is found is
// coerced to normal termination (StatusHalt), matching the treatment
// of falling off the end in the main loop, not raised as an error.
func (vm *VM) skipBlock() Status {
	depth := 1
	for depth > 0 {
		vm.prog++
		b, ok := vm.fetch()
		if !ok {
			return StatusHalt
		}
		switch b {
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return StatusOK
}
