package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/arthur-debert/tinct/pkg/errors"
	"github.com/arthur-debert/tinct/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorModeString(t *testing.T) {
	assert.Equal(t, "auto", ui.ColorAuto.String())
	assert.Equal(t, "always", ui.ColorAlways.String())
	assert.Equal(t, "never", ui.ColorNever.String())
	assert.Equal(t, "unknown", ui.ColorMode(99).String())
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.ColorMode
		wantErr  bool
	}{
		{input: "", expected: ui.ColorAuto},
		{input: "auto", expected: ui.ColorAuto},
		{input: "ALWAYS", expected: ui.ColorAlways},
		{input: " on ", expected: ui.ColorAlways},
		{input: "never", expected: ui.ColorNever},
		{input: "off", expected: ui.ColorNever},
		{input: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseColorMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectColor(t *testing.T) {
	t.Run("NO_COLOR wins", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		t.Setenv("CLICOLOR_FORCE", "1")
		assert.False(t, ui.DetectColor(os.Stdout))
	})

	t.Run("CLICOLOR_FORCE enables", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("CLICOLOR_FORCE", "1")
		assert.True(t, ui.DetectColor(&bytes.Buffer{}))
	})

	t.Run("non-file writer", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("CLICOLOR_FORCE", "")
		assert.False(t, ui.DetectColor(&bytes.Buffer{}))
	})

	t.Run("regular file", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		t.Setenv("CLICOLOR_FORCE", "")
		f, err := os.CreateTemp(t.TempDir(), "out")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		assert.False(t, ui.DetectColor(f))
		assert.False(t, ui.IsTerminal(f))
	})
}

func TestColorModeEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")

	var buf bytes.Buffer
	assert.True(t, ui.ColorAlways.Enabled(&buf))
	assert.False(t, ui.ColorNever.Enabled(&buf))
	assert.False(t, ui.ColorAuto.Enabled(&buf))
}
