package main

import (
	"fmt"
	"io"
)

// vmDumper renders a VM's full state for the -dump CLI flag: the
// instruction pointer, the scratch register, the operand stack, the
// call stack, the defined subroutines, and the result buffer so far.
type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (d vmDumper) dump() {
	vm := d.vm
	fmt.Fprintf(d.out, "ip: %d\n", vm.prog)
	fmt.Fprintf(d.out, "register: %d\n", vm.register)

	fmt.Fprintf(d.out, "stack (%d):", vm.stack.Len())
	for _, v := range vm.stack.values {
		fmt.Fprintf(d.out, " %v", v)
	}
	fmt.Fprintln(d.out)

	fmt.Fprintf(d.out, "calls (%d):", vm.calls.Len())
	for _, addr := range vm.calls.addrs {
		fmt.Fprintf(d.out, " %d", addr)
	}
	fmt.Fprintln(d.out)

	fmt.Fprint(d.out, "subroutines:")
	for letter := byte('A'); letter <= 'Z'; letter++ {
		if addr := vm.subs.get(letter); addr != -1 {
			fmt.Fprintf(d.out, " %c=%d", letter, addr)
		}
	}
	fmt.Fprintln(d.out)

	fmt.Fprintf(d.out, "result (%d, width=%d):", vm.result.Len(), vm.result.width())
	for _, v := range vm.result.values {
		fmt.Fprintf(d.out, " %d", v)
	}
	fmt.Fprintln(d.out)
}
