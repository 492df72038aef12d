package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c.txt")

	CreateFile(t, path, "content")

	assert.Equal(t, "content", ReadFile(t, path))
}

func TestCreateDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x", "y")

	CreateDir(t, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
