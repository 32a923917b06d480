package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/junct/pkg/logging"
	"github.com/arthur-debert/junct/pkg/types"
)

// MoveDir moves the directory at src to dst. It prefers a rename and
// falls back to a recursive copy followed by removal of the source when
// the rename fails because src and dst live on different filesystems.
//
// dst must not exist; the move creates it.
func MoveDir(fsys types.FS, src, dst string) error {
	logger := logging.GetLogger("filesystem")

	err := fsys.Rename(src, dst)
	if err == nil {
		return nil
	}

	if !isCrossDevice(err) {
		return err
	}

	logger.Debug().
		Str("src", src).
		Str("dst", dst).
		Msg("Rename crossed filesystems, falling back to copy")

	if err := copyTree(fsys, src, dst); err != nil {
		return err
	}
	return fsys.RemoveAll(src)
}

// isCrossDevice reports whether err is the OS telling us a rename
// crossed filesystem boundaries
func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

// copyTree recursively copies the directory at src to dst, preserving
// file modes and recreating symlinks
func copyTree(fsys types.FS, src, dst string) error {
	info, err := fsys.Lstat(src)
	if err != nil {
		return err
	}

	if err := fsys.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return err
	}

	entries, err := fsys.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		entryInfo, err := fsys.Lstat(srcPath)
		if err != nil {
			return err
		}

		switch {
		case entryInfo.Mode()&os.ModeSymlink != 0:
			dest, err := fsys.Readlink(srcPath)
			if err != nil {
				return err
			}
			if err := fsys.Symlink(dest, dstPath); err != nil {
				return err
			}
		case entryInfo.IsDir():
			if err := copyTree(fsys, srcPath, dstPath); err != nil {
				return err
			}
		default:
			data, err := fsys.ReadFile(srcPath)
			if err != nil {
				return err
			}
			if err := fsys.WriteFile(dstPath, data, entryInfo.Mode().Perm()); err != nil {
				return err
			}
		}
	}

	return nil
}
