// Package paths locates tinct's configuration, theme and log files.
//
// Directories follow the XDG Base Directory layout:
//
//   - Config: $XDG_CONFIG_HOME/tinct (config.toml, themes/)
//   - State: $XDG_STATE_HOME/tinct (tinct.log)
//
// # Environment Variables
//
//   - TINCT_CONFIG_DIR: override the config directory
//   - TINCT_STATE_DIR: override the state directory
//
// A leading "~" in an override is expanded to the home directory.
package paths
