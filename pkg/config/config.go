// Package config provides layered configuration for junct: built-in
// defaults, an optional user config file (TOML or YAML) resolved
// through the XDG config directory, and JUNCT_* environment overrides.
package config

import (
	"time"

	"github.com/arthur-debert/junct/pkg/junction"
)

// WorkerConfig tunes the relocation worker's channels and polling
type WorkerConfig struct {
	// QueueSize is the inbound task channel capacity
	QueueSize int `koanf:"queue_size" toml:"queue_size" yaml:"queue_size"`

	// ResultBuffer is the outbound outcome channel capacity. It must
	// stay large enough that publishing never blocks the worker.
	ResultBuffer int `koanf:"result_buffer" toml:"result_buffer" yaml:"result_buffer"`

	// PollInterval between outcome checks while waiting for completion
	PollInterval time.Duration `koanf:"poll_interval" toml:"poll_interval" yaml:"poll_interval"`
}

// LinkConfig selects the junction-creation strategy
type LinkConfig struct {
	// Mode is auto, command, or symlink
	Mode string `koanf:"mode" toml:"mode" yaml:"mode"`
}

// OutputConfig controls terminal output
type OutputConfig struct {
	// Color is auto, always, or never
	Color string `koanf:"color" toml:"color" yaml:"color"`
}

// Config is the complete junct configuration
type Config struct {
	Worker WorkerConfig `koanf:"worker" toml:"worker" yaml:"worker"`
	Link   LinkConfig   `koanf:"link" toml:"link" yaml:"link"`
	Output OutputConfig `koanf:"output" toml:"output" yaml:"output"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Worker: WorkerConfig{
			QueueSize:    1,
			ResultBuffer: 16,
			PollInterval: 100 * time.Millisecond,
		},
		Link: LinkConfig{
			Mode: string(junction.ModeAuto),
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// LinkMode returns the configured link mode, falling back to auto for
// unknown values
func (c *Config) LinkMode() junction.Mode {
	switch junction.Mode(c.Link.Mode) {
	case junction.ModeCommand:
		return junction.ModeCommand
	case junction.ModeSymlink:
		return junction.ModeSymlink
	default:
		return junction.ModeAuto
	}
}
