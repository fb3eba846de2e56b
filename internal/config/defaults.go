package config

import (
	"time"

	"github.com/tacogips/sitekit/internal/template/header"
)

// DefaultConfigName is the config file base name searched for when no path is given.
const DefaultConfigName = "sitekit"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Headers: HeadersConfig{
			ScriptWidth: header.DefaultScriptWidth,
			MarkupWidth: header.DefaultMarkupWidth,
		},
		Project: ProjectConfig{
			Author:    "Nick Balboni",
			FontStack: "'Lato', sans-serif",
		},
		Vendor: VendorConfig{
			Timeout:     30 * time.Second,
			Concurrency: 1,
			Resources:   DefaultVendorResources(),
		},
		Resources: ResourcesConfig{
			IgnorePatterns: []string{},
		},
		Build: BuildConfig{
			Interpreter: "python3",
			Script:      "build.py",
			Args:        []string{"-d"},
		},
	}
}

// DefaultVendorResources returns the stock sass mixin libraries.
func DefaultVendorResources() []VendorResource {
	return []VendorResource{
		{
			Name: "_flex-box_mixins.scss",
			URL:  "https://raw.githubusercontent.com/mastastealth/sass-flex-mixin/master/_flexbox.scss",
		},
		{
			Name: "_media-query_mixins.scss",
			URL:  "https://raw.githubusercontent.com/paranoida/sass-mediaqueries/master/_media-queries.scss",
		},
		{
			Name: "_general_mixins.scss",
			URL:  "https://raw.githubusercontent.com/SwankSwashbucklers/some-sassy-mixins/master/mixins.scss",
		},
	}
}
