// Package fileinput loads whole sd program buffers from a named file or
// from stdin. A regular file is sized and read in one shot; a stream
// that can't be seeked (stdin, a pipe) is read incrementally instead.
// Go's io/os give us both for free: os.ReadFile does the seek-and-size
// dance for a named file, and io.ReadAll grows a buffer incrementally
// for anything else.
package fileinput

import (
	"io"
	"os"
)

// Load reads the named program file in its entirety. name == "-" reads
// from r instead (conventionally os.Stdin), for hosts that want to pipe
// a program in rather than name a file.
func Load(name string, r io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(r)
	}
	return os.ReadFile(name)
}
