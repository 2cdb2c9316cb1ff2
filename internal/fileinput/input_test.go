package fileinput

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_namedFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "prog.sd")
	assert.NoError(t, os.WriteFile(name, []byte("5rh"), 0o644))

	code, err := Load(name, nil)
	assert.NoError(t, err)
	assert.Equal(t, []byte("5rh"), code)
}

func TestLoad_stdinSentinel(t *testing.T) {
	code, err := Load("-", strings.NewReader("1a"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("1a"), code)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.sd"), nil)
	assert.Error(t, err)
}
