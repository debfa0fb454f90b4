package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for tinct
	EnvConfigDir = "TINCT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for tinct
	EnvStateDir = "TINCT_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names inside the tinct directories.
const (
	// DirName is the directory name for tinct-specific files
	DirName = "tinct"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// ThemesDirName holds user theme files
	ThemesDirName = "themes"

	// ThemeExt is the extension of theme files
	ThemeExt = ".yaml"

	// LogFileName is the name of the log file
	LogFileName = "tinct.log"
)

// ConfigDir returns the directory holding the user configuration.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, DirName)
}

// StateDir returns the directory holding the log file.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.StateHome, DirName)
}

// ConfigFile returns the path of the user configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// ThemesDir returns the directory searched for named themes.
func ThemesDir() string {
	return filepath.Join(ConfigDir(), ThemesDirName)
}

// LogFilePath returns the default log file location.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ThemePath resolves a theme reference. Anything that looks like a path
// (contains a separator or ends in .yaml/.yml) is returned expanded;
// a bare name maps to <ThemesDir>/<name>.yaml.
func ThemePath(ref string) string {
	if ref == "" {
		return ""
	}
	ext := filepath.Ext(ref)
	if strings.ContainsRune(ref, filepath.Separator) || strings.HasPrefix(ref, "~") || ext == ".yaml" || ext == ".yml" {
		return ExpandHome(ref)
	}
	return filepath.Join(ThemesDir(), ref+ThemeExt)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	// ~user forms are left alone
	return path
}
