package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// MakeDirTree creates dir and writes the given files (name -> content)
// inside it, creating parent directories as needed
func MakeDirTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0755))
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// AssertDirExists fails the test unless path exists and is a directory
func AssertDirExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err, "expected directory at %s", path)
	require.True(t, info.IsDir(), "expected %s to be a directory", path)
}

// AssertNotExists fails the test if anything exists at path
func AssertNotExists(t *testing.T, path string) {
	t.Helper()

	_, err := os.Lstat(path)
	require.True(t, os.IsNotExist(err), "expected nothing at %s", path)
}

// AssertLinkTo fails the test unless path is a symlink pointing at dest
func AssertLinkTo(t *testing.T, path, dest string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err, "expected link at %s", path)
	require.NotZero(t, info.Mode()&os.ModeSymlink, "expected %s to be a link", path)

	got, err := os.Readlink(path)
	require.NoError(t, err)
	require.Equal(t, dest, got)
}

// AssertFileContent fails the test unless the file at path holds content
func AssertFileContent(t *testing.T, path, content string) {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, content, string(data))
}
