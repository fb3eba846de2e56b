package config

import "time"

// Config is the sitekit configuration, read from sitekit.yaml and SITEKIT_* env vars.
type Config struct {
	// Headers sizes the generated section banners.
	Headers HeadersConfig `mapstructure:"headers"`
	// Project holds values substituted into generated files.
	Project ProjectConfig `mapstructure:"project"`
	// Vendor lists the third-party stylesheet snippets to download.
	Vendor VendorConfig `mapstructure:"vendor"`
	// Resources configures resource import.
	Resources ResourcesConfig `mapstructure:"resources"`
	// Build configures the detached build step.
	Build BuildConfig `mapstructure:"build"`

	// Source is the file the configuration was read from, empty for defaults.
	Source string `mapstructure:"-"`
}

// HeadersConfig holds banner target widths.
type HeadersConfig struct {
	// ScriptWidth is the line width for script files (python).
	ScriptWidth int `mapstructure:"script_width"`
	// MarkupWidth is the line width for markup files (views).
	MarkupWidth int `mapstructure:"markup_width"`
}

// ProjectConfig holds project-wide template values.
type ProjectConfig struct {
	// Author goes into the author meta tag of the generated head view.
	Author string `mapstructure:"author"`
	// FontStack is the main font stack sass variable.
	FontStack string `mapstructure:"font_stack"`
}

// VendorConfig configures vendor stylesheet downloads.
type VendorConfig struct {
	// Timeout bounds each download; zero disables the timeout.
	Timeout time.Duration `mapstructure:"timeout"`
	// Concurrency is the number of parallel downloads. 1 fetches sequentially.
	Concurrency int `mapstructure:"concurrency"`
	// Resources are fetched into dev/sass/vendor and reported in order.
	Resources []VendorResource `mapstructure:"resources"`
}

// VendorResource is one downloadable stylesheet snippet.
type VendorResource struct {
	// Name is the file name written under dev/sass/vendor.
	Name string `mapstructure:"name"`
	// URL is fetched with a plain GET.
	URL string `mapstructure:"url"`
}

// ResourcesConfig configures how user resources are imported.
type ResourcesConfig struct {
	// IgnorePatterns are glob patterns of files never imported. Empty by default.
	IgnorePatterns []string `mapstructure:"ignore_patterns"`
}

// BuildConfig configures the build step launched after scaffolding.
type BuildConfig struct {
	// Interpreter runs the build script.
	Interpreter string `mapstructure:"interpreter"`
	// Script is copied into the project root and run there. Empty disables the step.
	Script string `mapstructure:"script"`
	// Args are passed to the script.
	Args []string `mapstructure:"args"`
}
