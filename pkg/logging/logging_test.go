package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/junct/pkg/paths"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv(paths.EnvStateDir, tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, paths.LogFileName)
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("relocation.worker")

	// The component field should survive into log output
	if logger.GetLevel() == zerolog.Disabled {
		t.Error("GetLogger() returned a disabled logger")
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("with state dir override", func(t *testing.T) {
		t.Setenv(paths.EnvStateDir, "/custom/state")

		got := getLogFilePath()
		want := filepath.Join("/custom/state", paths.LogFileName)
		if got != want {
			t.Errorf("getLogFilePath() = %q, want %q", got, want)
		}
	})

	t.Run("without override", func(t *testing.T) {
		t.Setenv(paths.EnvStateDir, "")

		got := getLogFilePath()
		if filepath.Base(got) != paths.LogFileName {
			t.Errorf("getLogFilePath() = %q, want a %s path", got, paths.LogFileName)
		}
	})
}
