package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/tacogips/sitekit/internal/debug"
)

// EnvPrefix prefixes environment overrides, e.g. SITEKIT_HEADERS_SCRIPT_WIDTH.
const EnvPrefix = "SITEKIT"

// Loader defines the interface for loading configuration.
type Loader interface {
	// Load loads configuration from the specified file path. The file must exist.
	Load(path string) (*Config, error)
	// LoadOrDefault searches dir for a sitekit config file and falls back to
	// defaults (plus env overrides) when there is none.
	LoadOrDefault(dir string) (*Config, error)
}

// ViperLoader implements Loader on top of viper.
type ViperLoader struct{}

// NewLoader creates a new ViperLoader instance.
func NewLoader() Loader {
	return &ViperLoader{}
}

// Load loads configuration from the specified file path.
func (l *ViperLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigError(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigError(ConfigInvalid, path, "failed to read configuration file", err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, NewConfigError(ConfigInvalid, path, "failed to parse configuration file", err)
	}

	return decode(v, path)
}

// LoadOrDefault searches dir for sitekit.{yaml,yml,json,toml}.
func (l *ViperLoader) LoadOrDefault(dir string) (*Config, error) {
	v := newViper()
	v.SetConfigName(DefaultConfigName)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, NewConfigError(ConfigInvalid, v.ConfigFileUsed(), "failed to parse configuration file", err)
		}
		debug.Debug("[config] No %s config in %s, using defaults", DefaultConfigName, dir)
	}

	return decode(v, v.ConfigFileUsed())
}

// newViper creates a viper instance seeded with defaults and env binding.
func newViper() *viper.Viper {
	v := viper.New()

	d := DefaultConfig()
	v.SetDefault("headers.script_width", d.Headers.ScriptWidth)
	v.SetDefault("headers.markup_width", d.Headers.MarkupWidth)
	v.SetDefault("project.author", d.Project.Author)
	v.SetDefault("project.font_stack", d.Project.FontStack)
	v.SetDefault("vendor.timeout", d.Vendor.Timeout)
	v.SetDefault("vendor.concurrency", d.Vendor.Concurrency)
	v.SetDefault("vendor.resources", vendorDefaults(d.Vendor.Resources))
	v.SetDefault("resources.ignore_patterns", d.Resources.IgnorePatterns)
	v.SetDefault("build.interpreter", d.Build.Interpreter)
	v.SetDefault("build.script", d.Build.Script)
	v.SetDefault("build.args", d.Build.Args)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// vendorDefaults converts resources into the generic form viper merges with file values.
func vendorDefaults(resources []VendorResource) []map[string]any {
	out := make([]map[string]any, 0, len(resources))
	for _, r := range resources {
		out = append(out, map[string]any{"name": r.Name, "url": r.URL})
	}
	return out
}

// decode unmarshals and validates the merged configuration.
func decode(v *viper.Viper, file string) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewConfigError(ConfigInvalid, file, "failed to decode configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, NewConfigError(ConfigValidationFailed, file, "invalid configuration", err)
	}
	cfg.Source = file

	debug.DebugValue("[config] File", file)
	debug.DebugValue("[config] Vendor resources", len(cfg.Vendor.Resources))
	return &cfg, nil
}
