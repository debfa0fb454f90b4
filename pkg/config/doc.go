// Package config handles configuration management for tinct.
//
// Configuration is layered with koanf, later sources overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/tinct/config.toml or --config
//  3. TINCT_* environment variables (TINCT_RENDER_COLOR -> render.color)
//  4. command-line flag overrides
package config
