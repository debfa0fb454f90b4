package config

import (
	"os"
	"sort"

	"github.com/arthur-debert/tinct/pkg/errors"
	"github.com/arthur-debert/tinct/pkg/theme"
	toml "github.com/pelletier/go-toml/v2"
)

// Color modes accepted by render.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the merged tinct configuration.
type Config struct {
	Render RenderConfig `koanf:"render" toml:"render"`
	Theme  ThemeConfig  `koanf:"theme" toml:"theme"`
	Log    LogConfig    `koanf:"log" toml:"log"`

	// Source is the user file that was loaded, if any.
	Source string `koanf:"-" toml:"-"`
}

// RenderConfig controls output.
type RenderConfig struct {
	Color     string `koanf:"color" toml:"color"`
	Streaming bool   `koanf:"streaming" toml:"streaming"`
}

// ThemeConfig selects the theme and adds inline aliases.
type ThemeConfig struct {
	File    string            `koanf:"file" toml:"file"`
	Aliases map[string]string `koanf:"aliases" toml:"aliases"`
}

// LogConfig controls the log file.
type LogConfig struct {
	File string `koanf:"file" toml:"file"`
}

// Validate checks values that koanf cannot type-check.
func (c *Config) Validate() error {
	switch c.Render.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigValid, "render.color must be auto, always or never, got %q", c.Render.Color).
			WithDetail("key", "render.color")
	}
	if _, err := c.InlineTheme(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid theme.aliases").
			WithDetail("key", "theme.aliases")
	}
	return nil
}

// InlineTheme builds a theme from theme.aliases.
func (c *Config) InlineTheme() (*theme.Theme, error) {
	return theme.FromFile(theme.File{Styles: c.Theme.Aliases})
}

// AliasNames returns the inline alias names in sorted order.
func (c *Config) AliasNames() []string {
	names := make([]string, 0, len(c.Theme.Aliases))
	for name := range c.Theme.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dump encodes cfg as TOML.
func Dump(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return string(data), nil
}

// WriteDefault writes the default configuration to path unless a file is
// already there.
func WriteDefault(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot create %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(defaultConfig); err != nil {
		return errors.Wrapf(err, errors.ErrWrite, "failed to write %s", path).
			WithDetail("path", path)
	}
	return nil
}
