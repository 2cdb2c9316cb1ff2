package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunErr(t *testing.T) {
	err := newRunErr(StatusType, 12)
	assert.Equal(t, StatusType, err.Status())
	assert.Contains(t, err.Error(), "type error")
	assert.Contains(t, err.Error(), "12")
}

func TestStatusString(t *testing.T) {
	for _, status := range []Status{
		StatusOK, StatusHalt, StatusState, StatusType,
		StatusSubroutine, StatusMem, StatusOverflow,
	} {
		assert.NotEmpty(t, status.String())
	}
	assert.Contains(t, Status(99).String(), "99")
}
