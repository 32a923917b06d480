package testutil

import (
	"io/fs"
	"sync"

	"github.com/arthur-debert/junct/pkg/types"
)

// ErrFS wraps a real types.FS and injects errors for selected
// operation/path pairs. Paths not configured pass through untouched.
type ErrFS struct {
	types.FS

	mu     sync.Mutex
	errors map[string]error
}

// NewErrFS creates an error-injecting wrapper around base
func NewErrFS(base types.FS) *ErrFS {
	return &ErrFS{
		FS:     base,
		errors: make(map[string]error),
	}
}

// FailWith injects err for the given operation ("stat", "readdir",
// "remove", "rename", "samefile", "symlink") on the given path
func (e *ErrFS) FailWith(op, path string, err error) *ErrFS {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errors[op+":"+path] = err
	return e
}

func (e *ErrFS) injected(op, path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errors[op+":"+path]
}

func (e *ErrFS) Stat(name string) (fs.FileInfo, error) {
	if err := e.injected("stat", name); err != nil {
		return nil, err
	}
	return e.FS.Stat(name)
}

func (e *ErrFS) Lstat(name string) (fs.FileInfo, error) {
	if err := e.injected("lstat", name); err != nil {
		return nil, err
	}
	return e.FS.Lstat(name)
}

func (e *ErrFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := e.injected("readdir", name); err != nil {
		return nil, err
	}
	return e.FS.ReadDir(name)
}

func (e *ErrFS) Remove(name string) error {
	if err := e.injected("remove", name); err != nil {
		return err
	}
	return e.FS.Remove(name)
}

func (e *ErrFS) Rename(oldpath, newpath string) error {
	if err := e.injected("rename", oldpath); err != nil {
		return err
	}
	return e.FS.Rename(oldpath, newpath)
}

func (e *ErrFS) SameFile(a, b string) (bool, error) {
	if err := e.injected("samefile", a); err != nil {
		return false, err
	}
	return e.FS.SameFile(a, b)
}

func (e *ErrFS) Symlink(oldname, newname string) error {
	if err := e.injected("symlink", newname); err != nil {
		return err
	}
	return e.FS.Symlink(oldname, newname)
}
