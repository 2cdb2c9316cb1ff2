package main

import (
	"encoding/binary"
	"io"
)

// ResultBuffer is the VM's append-only output sequence: every value
// r appends is stored here, and the whole sequence is written out
// once, at termination, at the narrowest signed integer width that
// holds every stored value losslessly.
//
// The reference implementation grows its backing array by cap =
// cap*cap*2, which is super-exponential; this is almost certainly a
// typo for conventional doubling, which is what Go's built-in slice
// append already gives us for free, so no explicit growth policy is
// implemented here at all.
type ResultBuffer struct {
	values []int64
}

// Len returns the number of values appended so far.
func (r *ResultBuffer) Len() int { return len(r.values) }

// append adds val to the end of the buffer. The buffer's length never
// decreases.
func (r *ResultBuffer) append(val int64) {
	r.values = append(r.values, val)
}

// width classifies the tightest signed width that can losslessly
// represent every stored value: 8, 16, or 64 bits.
func (r *ResultBuffer) width() int {
	width := 8
	for _, v := range r.values {
		if v < -128 || v > 127 {
			width = 16
			if v < -32768 || v > 32767 {
				return 64
			}
		}
	}
	return width
}

// WriteTo flushes the buffer to w as a raw, header-less sequence of
// signed integers in host byte order, at the width reported by
// width(). An empty buffer writes zero bytes. The flush is
// unconditional and is meant to run even when the VM terminated with
// an error status -- halt invokes it on every termination, never
// conditionally on a successful run.
func (r *ResultBuffer) WriteTo(w io.Writer) (n int64, err error) {
	if len(r.values) == 0 {
		return 0, nil
	}

	switch width := r.width(); width {
	case 8:
		buf := make([]byte, len(r.values))
		for i, v := range r.values {
			buf[i] = byte(int8(v))
		}
		m, err := w.Write(buf)
		return int64(m), err
	case 16:
		buf := make([]byte, len(r.values)*2)
		for i, v := range r.values {
			binary.NativeEndian.PutUint16(buf[i*2:], uint16(int16(v)))
		}
		m, err := w.Write(buf)
		return int64(m), err
	default:
		buf := make([]byte, len(r.values)*8)
		for i, v := range r.values {
			binary.NativeEndian.PutUint64(buf[i*8:], uint64(v))
		}
		m, err := w.Write(buf)
		return int64(m), err
	}
}
