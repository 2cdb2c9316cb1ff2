package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultBuffer_widthEscalation(t *testing.T) {
	var r ResultBuffer
	assert.Equal(t, 8, r.width())

	r.append(127)
	assert.Equal(t, 8, r.width())

	r.append(128)
	assert.Equal(t, 16, r.width())

	r.append(32768)
	assert.Equal(t, 64, r.width())
}

func TestResultBuffer_WriteTo(t *testing.T) {
	var r ResultBuffer
	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.Bytes())

	r.append(-1)
	buf.Reset()
	_, err = r.WriteTo(&buf)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xff}, buf.Bytes())
}

func TestResultBuffer_WriteTo16(t *testing.T) {
	var r ResultBuffer
	r.append(-1)
	r.append(300)
	var buf bytes.Buffer
	_, err := r.WriteTo(&buf)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xff, 0x2c, 0x01}, buf.Bytes())
}
