// Package junction abstracts the platform-specific link-creation step
// of a relocation: making the old source path resolve into the new
// target directory.
//
// On Windows the real thing is a directory junction created by the
// cmd.exe mklink builtin, which only exists as a shell command and so
// is modeled as an external process invocation. Other platforms
// substitute a native symlink behind the same two-path interface.
package junction

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/arthur-debert/junct/pkg/logging"
	"github.com/arthur-debert/junct/pkg/types"
	"github.com/rs/zerolog"
)

// Linker creates a directory link at location pointing into target
type Linker interface {
	CreateLink(location, target string) error
}

// Mode selects the link-creation strategy
type Mode string

const (
	// ModeAuto picks the strategy for the host platform
	ModeAuto Mode = "auto"

	// ModeCommand always uses the external mklink invocation
	ModeCommand Mode = "command"

	// ModeSymlink always uses a native symlink
	ModeSymlink Mode = "symlink"
)

// NewLinker returns the Linker for the given mode. ModeAuto resolves to
// the mklink command on Windows and a native symlink elsewhere.
func NewLinker(fsys types.FS, mode Mode) Linker {
	switch mode {
	case ModeCommand:
		return NewCommandLinker()
	case ModeSymlink:
		return NewSymlinkLinker(fsys)
	default:
		if runtime.GOOS == "windows" {
			return NewCommandLinker()
		}
		return NewSymlinkLinker(fsys)
	}
}

// CommandLinker creates junctions through the cmd.exe mklink builtin
type CommandLinker struct {
	shell  string
	logger zerolog.Logger
}

// NewCommandLinker creates a CommandLinker using cmd.exe
func NewCommandLinker() *CommandLinker {
	return &CommandLinker{
		shell:  "cmd",
		logger: logging.GetLogger("junction.command"),
	}
}

// BuildMklinkCommand returns the full mklink command line for creating
// a junction at location pointing at target, with both paths escaped
// for cmd.exe.
func BuildMklinkCommand(location, target string) string {
	return fmt.Sprintf("mklink /J %s %s", EscapeForCmd(location), EscapeForCmd(target))
}

// CreateLink runs the mklink command. A non-zero exit status is fatal
// for the link step.
func (l *CommandLinker) CreateLink(location, target string) error {
	cmdline := BuildMklinkCommand(location, target)

	l.logger.Debug().
		Str("shell", l.shell).
		Str("cmdline", cmdline).
		Msg("Creating junction")

	var stderr bytes.Buffer
	cmd := exec.Command(l.shell, "/C", cmdline)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("mklink failed: %s: %w", msg, err)
		}
		return fmt.Errorf("mklink failed: %w", err)
	}

	return nil
}

// SymlinkLinker substitutes a native symlink for a junction on hosts
// without cmd.exe
type SymlinkLinker struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewSymlinkLinker creates a SymlinkLinker on the given filesystem
func NewSymlinkLinker(fsys types.FS) *SymlinkLinker {
	return &SymlinkLinker{
		fs:     fsys,
		logger: logging.GetLogger("junction.symlink"),
	}
}

// CreateLink creates a symlink at location pointing at target
func (l *SymlinkLinker) CreateLink(location, target string) error {
	l.logger.Debug().
		Str("location", location).
		Str("target", target).
		Msg("Creating symlink")

	return l.fs.Symlink(target, location)
}
