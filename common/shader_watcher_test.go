package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basic.shader")
	require.NoError(t, os.WriteFile(path, []byte("#shader vertex\n"), 0o644))

	sw, err := NewShaderWatcher(dir)
	require.NoError(t, err)
	defer sw.Close()

	require.NoError(t, os.WriteFile(path, []byte("#shader vertex\nvoid main() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, sw.Poll()...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, []string{path}, got)
	assert.Empty(t, sw.Poll())
}

func TestShaderWatcherMissingDir(t *testing.T) {
	_, err := NewShaderWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestShaderWatcherDeduplicates(t *testing.T) {
	sw := &ShaderWatcher{}
	sw.add("a.shader")
	sw.add("b.shader")
	sw.add("a.shader")
	assert.Equal(t, []string{"a.shader", "b.shader"}, sw.Poll())
	assert.Nil(t, sw.Poll())
}
