package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/junct/pkg/paths"
	"github.com/stretchr/testify/assert"
)

func TestNewWithOverrides(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/custom/config")
	t.Setenv(paths.EnvStateDir, "/custom/state")

	p := paths.New()

	assert.Equal(t, "/custom/config", p.ConfigDir())
	assert.Equal(t, filepath.Join("/custom/config", "config.toml"), p.ConfigFilePath())
	assert.Equal(t, "/custom/state", p.StateDir())
	assert.Equal(t, filepath.Join("/custom/state", "junct.log"), p.LogFilePath())
}

func TestNewDefaults(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvStateDir, "")

	p := paths.New()

	assert.Equal(t, "junct", filepath.Base(p.ConfigDir()))
	assert.Equal(t, "junct", filepath.Base(p.StateDir()))
	assert.Equal(t, "junct.log", filepath.Base(p.LogFilePath()))
}
