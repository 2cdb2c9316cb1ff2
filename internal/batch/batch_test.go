package batch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_preservesOrder(t *testing.T) {
	jobs := []Job{
		{Name: "a", Code: []byte{1}},
		{Name: "b", Code: []byte{2}},
		{Name: "c", Code: []byte{3}},
	}

	results, err := Run(context.Background(), jobs, func(ctx context.Context, code []byte) ([]byte, error) {
		out := make([]byte, len(code))
		for i, b := range code {
			out[i] = b * 2
		}
		return out, nil
	})

	assert.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Name)
	assert.Equal(t, []byte{2}, results[0].Output)
	assert.Equal(t, "b", results[1].Name)
	assert.Equal(t, []byte{4}, results[1].Output)
	assert.Equal(t, "c", results[2].Name)
	assert.Equal(t, []byte{6}, results[2].Output)
}

func TestRun_reportsPerJobError(t *testing.T) {
	boom := errors.New("boom")
	jobs := []Job{
		{Name: "ok", Code: nil},
		{Name: "bad", Code: nil},
	}

	results, err := Run(context.Background(), jobs, func(ctx context.Context, code []byte) ([]byte, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Len(t, results, 2)
	for _, res := range results {
		assert.ErrorIs(t, res.Err, boom)
	}
}
