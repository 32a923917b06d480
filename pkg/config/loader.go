package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/junct/pkg/errors"
	"github.com/arthur-debert/junct/pkg/paths"
)

// envPrefix for configuration overrides, e.g. JUNCT_WORKER_POLL_INTERVAL
const envPrefix = "JUNCT_"

// Load builds the effective configuration: defaults, then the config
// file (the given path, or the XDG location if path is empty and the
// file exists), then environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading default configuration")
	}

	// 2. Config file. An explicitly given path must exist; the XDG
	// default location is optional.
	configPath := path
	if configPath == "" {
		candidate := paths.New().ConfigFilePath()
		if _, err := os.Stat(candidate); err == nil {
			configPath = candidate
		}
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", configPath)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), parserFor(configPath)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "parsing %s", configPath)
		}
	}

	// 3. Environment overrides
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// JUNCT_WORKER_POLL_INTERVAL -> worker.poll_interval
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "loading environment overrides")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "unmarshaling configuration")
	}

	return &cfg, nil
}

// parserFor picks the file parser by extension, defaulting to TOML
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// defaultsMap flattens Default() into koanf keys
func defaultsMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"worker.queue_size":    d.Worker.QueueSize,
		"worker.result_buffer": d.Worker.ResultBuffer,
		"worker.poll_interval": d.Worker.PollInterval.String(),
		"link.mode":            d.Link.Mode,
		"output.color":         d.Output.Color,
	}
}
