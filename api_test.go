package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_defaults(t *testing.T) {
	vm := New()
	defer vm.Close()
	assert.NotNil(t, vm.out, "default output should be a discarding flusher")
}

func TestRun_basicProgram(t *testing.T) {
	var out bytes.Buffer
	vm := New(WithCode([]byte("5rh")), WithOutput(&out))
	defer vm.Close()

	err := vm.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []byte{5}, out.Bytes())
}

func TestRun_faultIsReturnedAsPlainError(t *testing.T) {
	vm := New(WithCode([]byte("1a")))
	defer vm.Close()

	err := vm.Run(context.Background())
	if assert.Error(t, err) {
		var re runErr
		assert.ErrorAs(t, err, &re)
		assert.Equal(t, StatusState, re.Status())
	}
}

func TestRun_contextCancellation(t *testing.T) {
	// "03sj" computes 0-3 and jumps back by that delta from its own
	// position, landing back on byte 0 every time: an infinite loop
	// with a bounded stack, used here only to exercise cancellation.
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()

	vm := New(WithCode([]byte("03sj")))
	defer vm.Close()

	err := vm.Run(ctx)
	assert.Error(t, err)
}

func TestWithTee_mirrorsOutput(t *testing.T) {
	var primary, tee bytes.Buffer
	vm := New(WithCode([]byte("5rh")), WithOutput(&primary), WithTee(&tee))
	defer vm.Close()

	assert.NoError(t, vm.Run(context.Background()))
	assert.Equal(t, primary.Bytes(), tee.Bytes())
}

func TestVMOptions_flattenAndSkipNil(t *testing.T) {
	combined := VMOptions(nil, VMOptions(WithStackLimit(3), nil), WithStackLimit(5))
	var vm VM
	combined.apply(&vm)
	assert.Equal(t, 5, vm.stack.limit)
}
