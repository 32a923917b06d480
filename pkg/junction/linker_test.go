package junction_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/junct/pkg/filesystem"
	"github.com/arthur-debert/junct/pkg/junction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymlinkLinkerCreateLink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink linker is the non-Windows substitute")
	}

	fsys := filesystem.NewOS()
	tmp := t.TempDir()

	target := filepath.Join(tmp, "target")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "x.txt"), []byte("x"), 0644))

	location := filepath.Join(tmp, "location")
	linker := junction.NewSymlinkLinker(fsys)
	require.NoError(t, linker.CreateLink(location, target))

	// The link resolves into the target's contents
	dest, err := os.Readlink(location)
	require.NoError(t, err)
	assert.Equal(t, target, dest)

	data, err := os.ReadFile(filepath.Join(location, "x.txt"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestSymlinkLinkerLocationExists(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink linker is the non-Windows substitute")
	}

	fsys := filesystem.NewOS()
	tmp := t.TempDir()

	location := filepath.Join(tmp, "location")
	require.NoError(t, os.Mkdir(location, 0755))

	linker := junction.NewSymlinkLinker(fsys)
	assert.Error(t, linker.CreateLink(location, filepath.Join(tmp, "target")))
}

func TestNewLinkerModes(t *testing.T) {
	fsys := filesystem.NewOS()

	assert.IsType(t, &junction.CommandLinker{}, junction.NewLinker(fsys, junction.ModeCommand))
	assert.IsType(t, &junction.SymlinkLinker{}, junction.NewLinker(fsys, junction.ModeSymlink))

	auto := junction.NewLinker(fsys, junction.ModeAuto)
	if runtime.GOOS == "windows" {
		assert.IsType(t, &junction.CommandLinker{}, auto)
	} else {
		assert.IsType(t, &junction.SymlinkLinker{}, auto)
	}
}
