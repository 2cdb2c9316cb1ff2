package main

// SubroutineTable is a total mapping from the 26 uppercase letters to
// code addresses, each with its own defined flag. The reference
// implementation packs the flags into a bitfield alongside a fixed
// array; a parallel bool array expresses the same thing without a
// separate bitfield, per the Design Notes.
type SubroutineTable struct {
	addrs   [26]int64
	defined [26]bool
}

// set stores addr for letter and marks it defined. Redefinition
// overwrites silently.
func (t *SubroutineTable) set(letter byte, addr int64) {
	t.addrs[letter-'A'] = addr
	t.defined[letter-'A'] = true
}

// get returns the address stored for letter, or -1 if it was never
// defined. An undefined slot is never read past its defined flag, so
// it cannot return stale data.
func (t *SubroutineTable) get(letter byte) int64 {
	i := letter - 'A'
	if !t.defined[i] {
		return -1
	}
	return t.addrs[i]
}
