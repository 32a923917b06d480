// Package paths provides centralized path handling for junct.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for junct
	EnvConfigDir = "JUNCT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for junct
	EnvStateDir = "JUNCT_STATE_DIR"
)

// Default directories and files
const (
	// JunctDirName is the directory name for junct-specific files
	JunctDirName = "junct"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "junct.log"
)

// Paths provides centralized path management for junct
type Paths interface {
	ConfigDir() string
	ConfigFilePath() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New creates a new Paths instance. Environment overrides take
// precedence over the XDG base directories.
func New() Paths {
	p := &paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.xdgConfig = dir
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, JunctDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.xdgState = dir
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, JunctDirName)
	}

	return p
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

func (p *paths) StateDir() string {
	return p.xdgState
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}
