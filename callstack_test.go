package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallStack_pushPopUnderflow(t *testing.T) {
	var c CallStack
	assert.Equal(t, int64(-1), c.pop())

	c.push(5)
	c.push(9)
	assert.Equal(t, 2, c.Len())

	assert.EqualValues(t, 9, c.pop())
	assert.EqualValues(t, 5, c.pop())
	assert.EqualValues(t, -1, c.pop())
}
