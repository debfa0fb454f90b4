package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/tinct/pkg/errors"
	"github.com/arthur-debert/tinct/pkg/logging"
	"github.com/arthur-debert/tinct/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "TINCT_"

// Options selects the sources Load reads.
type Options struct {
	// File is an explicit config file. It must exist when set. When empty
	// the default user file is used if present.
	File string

	// Overrides are dotted keys applied last, typically from flags.
	Overrides map[string]interface{}

	// SkipEnv ignores TINCT_* variables.
	SkipEnv bool
}

// Load merges every configuration layer and returns the validated result.
func Load(opts Options) (*Config, error) {
	defer logging.LogOperationStart(log.Logger, "config.load")()

	k, source, err := load(opts)
	if err != nil {
		return nil, err
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       trimStringHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = source
	cfg.Render.Color = strings.ToLower(cfg.Render.Color)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("source", source).
		Str("color", cfg.Render.Color).
		Bool("streaming", cfg.Render.Streaming).
		Str("theme", cfg.Theme.File).
		Msg("configuration loaded")
	return &cfg, nil
}

// Koanf returns the merged key space without unmarshalling it.
func Koanf(opts Options) (*koanf.Koanf, error) {
	k, _, err := load(opts)
	return k, err
}

func load(opts Options) (*koanf.Koanf, string, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, "", errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	source, err := userFile(opts.File)
	if err != nil {
		return nil, "", err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), toml.Parser()); err != nil {
			return nil, "", errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", source).
				WithDetail("path", source)
		}
	}

	// 3. Env vars
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
		}), nil)
		if err != nil {
			return nil, "", errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, "", errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	return k, source, nil
}

func userFile(explicit string) (string, error) {
	if explicit != "" {
		path := paths.ExpandHome(explicit)
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrNotFound, "config file %s not found", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	path := paths.ConfigFile()
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}
