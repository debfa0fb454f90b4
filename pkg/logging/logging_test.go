package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/tinct/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, err := os.Stat(filepath.Join(tempDir, "tinct.log"))
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestSetupWritesToConsoleAndFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "nested", "out.log")
	var console bytes.Buffer

	got := Setup(Options{Verbosity: 1, File: logFile, Console: &console, NoColor: true})
	assert.Equal(t, logFile, got)

	log.Info().Str("k", "v").Msg("hello")

	assert.Contains(t, console.String(), "hello")
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestSetupWithoutFile(t *testing.T) {
	var console bytes.Buffer
	got := Setup(Options{File: "-", Console: &console, NoColor: true})
	assert.Empty(t, got)

	log.Warn().Msg("console only")
	assert.Contains(t, console.String(), "console only")
}

func TestSetupUnwritableFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	var console bytes.Buffer
	got := Setup(Options{File: filepath.Join(blocker, "x.log"), Console: &console, NoColor: true})
	assert.Empty(t, got)
	assert.Contains(t, console.String(), "Failed to create log file")
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("render")
	logger.Info().Msg("x")
	assert.Contains(t, buf.String(), `"component":"render"`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "render")
	assert.Contains(t, buf.String(), "Operation started")
	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), `"duration"`)
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf)

	LogCommand("render", []string{"{red x}"})
	assert.Contains(t, buf.String(), `"command":"render"`)
}
