package filesystem_test

import (
	"os"
	"path/filepath"
	"runtime"
	"syscall"
	"testing"

	"github.com/arthur-debert/junct/pkg/filesystem"
	"github.com/arthur-debert/junct/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveDirRename(t *testing.T) {
	fsys := filesystem.NewOS()
	tmp := t.TempDir()

	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "x.txt"), []byte("hello"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "nested", "y.txt"), []byte("world"), 0644))

	require.NoError(t, filesystem.MoveDir(fsys, src, dst))

	// Source is gone, destination has the full tree
	_, err := os.Lstat(src)
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(filepath.Join(dst, "x.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "nested", "y.txt"))
	require.NoError(t, err)
	assert.Equal(t, "world", string(data))
}

func TestMoveDirMissingSource(t *testing.T) {
	fsys := filesystem.NewOS()
	tmp := t.TempDir()

	err := filesystem.MoveDir(fsys, filepath.Join(tmp, "nope"), filepath.Join(tmp, "dst"))
	assert.Error(t, err)
}

func TestSameFile(t *testing.T) {
	fsys := filesystem.NewOS()
	tmp := t.TempDir()

	dir := filepath.Join(tmp, "dir")
	require.NoError(t, os.Mkdir(dir, 0755))

	same, err := fsys.SameFile(dir, dir)
	require.NoError(t, err)
	assert.True(t, same)

	other := filepath.Join(tmp, "other")
	require.NoError(t, os.Mkdir(other, 0755))

	same, err = fsys.SameFile(dir, other)
	require.NoError(t, err)
	assert.False(t, same)

	// Symlinked paths resolve to the same entry
	link := filepath.Join(tmp, "link")
	require.NoError(t, os.Symlink(dir, link))

	same, err = fsys.SameFile(dir, link)
	require.NoError(t, err)
	assert.True(t, same)
}

func TestOSReadDir(t *testing.T) {
	fsys := filesystem.NewOS()
	tmp := t.TempDir()

	entries, err := fsys.ReadDir(tmp)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, os.WriteFile(filepath.Join(tmp, "a"), nil, 0644))

	entries, err = fsys.ReadDir(tmp)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMoveDirCrossDeviceFallsBackToCopy(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses symlinks in the source tree")
	}

	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "x.txt"), []byte("hello"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "nested", "y.txt"), []byte("world"), 0644))
	require.NoError(t, os.Symlink("x.txt", filepath.Join(src, "link")))

	// Make the rename report a cross-filesystem move so the copy path runs
	fsys := testutil.NewErrFS(filesystem.NewOS()).
		FailWith("rename", src, syscall.EXDEV)

	require.NoError(t, filesystem.MoveDir(fsys, src, dst))

	// Full tree copied, symlink recreated, source removed
	data, err := os.ReadFile(filepath.Join(dst, "x.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "nested", "y.txt"))
	require.NoError(t, err)
	assert.Equal(t, "world", string(data))

	info, err := os.Stat(filepath.Join(dst, "x.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	linkDest, err := os.Readlink(filepath.Join(dst, "link"))
	require.NoError(t, err)
	assert.Equal(t, "x.txt", linkDest)

	_, err = os.Lstat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestMoveDirNonCrossDeviceRenameErrorSurfaces(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	require.NoError(t, os.Mkdir(src, 0755))

	fsys := testutil.NewErrFS(filesystem.NewOS()).
		FailWith("rename", src, syscall.EACCES)

	err := filesystem.MoveDir(fsys, src, filepath.Join(tmp, "dst"))
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.EACCES)

	// No fallback ran; the source is untouched
	_, statErr := os.Stat(src)
	assert.NoError(t, statErr)
}
