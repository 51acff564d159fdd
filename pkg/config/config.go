// Package config loads catcher configuration: the exception type hierarchy,
// the runtime error-reporting mask, and the default-handler toggle.
//
// Configuration is layered: embedded defaults, then a catcher.toml or
// catcher.yaml file, then CATCHER_* environment variables, each overriding
// the previous layer.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/catcher/pkg/bridge"
	"github.com/arthur-debert/catcher/pkg/errors"
	"github.com/arthur-debert/catcher/pkg/exc"
)

// TypeDef declares one exception type in the hierarchy. An empty parent
// means the root type.
type TypeDef struct {
	Name   string `koanf:"name" toml:"name"`
	Parent string `koanf:"parent" toml:"parent"`
}

// Config is the resolved catcher configuration.
type Config struct {
	// DefaultHandler controls whether the bridge's catch-all diagnostic
	// handler is registered at install time.
	DefaultHandler bool `koanf:"default_handler" toml:"default_handler"`

	// Reporting lists the severity names included in the error-reporting
	// mask: error, warning, notice, deprecated, all, none.
	Reporting []string `koanf:"reporting" toml:"reporting"`

	// Types declares the exception hierarchy, parents before children.
	Types []TypeDef `koanf:"types" toml:"types,omitempty"`
}

// candidate config file names, tried in order when no path is given
var configNames = []string{"catcher.toml", ".catcher.toml", "catcher.yaml", ".catcher.yaml"}

// Load resolves configuration from defaults, an optional file, and the
// environment. When path is empty the working directory is searched for the
// standard config file names.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
	}

	if err := k.Load(env.ProviderWithValue("CATCHER_", ".", func(key, value string) (string, interface{}) {
		name := strings.ToLower(strings.TrimPrefix(key, "CATCHER_"))
		if name == "reporting" {
			return name, strings.Split(value, ",")
		}
		return name, value
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Mask resolves the configured severity names into a reporting mask.
func (c *Config) Mask() (bridge.Severity, error) {
	mask, err := bridge.ParseMask(c.Reporting)
	if err != nil {
		return bridge.SevNone, errors.Wrap(err, errors.ErrConfigValid, "invalid reporting mask")
	}
	return mask, nil
}

// BuildHierarchy declares the configured types, in order, into a fresh
// hierarchy. Parents must appear before their children.
func (c *Config) BuildHierarchy() (*exc.Hierarchy, error) {
	h := exc.NewHierarchy()
	for _, td := range c.Types {
		if err := h.Declare(td.Name, td.Parent); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid type declaration %q", td.Name)
		}
	}
	return h, nil
}

// DefaultTOML renders the built-in default configuration as TOML.
func DefaultTOML() (string, error) {
	out, err := gotoml.Marshal(defaults())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal default config")
	}
	return string(out), nil
}

// defaults mirrors the embedded catcher.toml
func defaults() *Config {
	return &Config{
		DefaultHandler: true,
		Reporting:      []string{"error", "warning"},
	}
}

// findConfigFile returns the first standard config file present in the
// working directory, or empty.
func findConfigFile() string {
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// parserFor picks the koanf parser matching the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch filepath.Ext(path) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path))
	}
}
