package config

import (
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// minBannerWidth leaves room for the fixed banner decorations.
const minBannerWidth = 20

// Resource names and URLs end up inside double quoted python strings in update.py.
var (
	plainFileName = regexp.MustCompile(`^[^/\\"\r\n]+$`)
	quoteSafe     = regexp.MustCompile(`^[^\\"\r\n]*$`)
)

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Headers.Validate(); err != nil {
		return fmt.Errorf("headers: %w", err)
	}
	if err := c.Vendor.Validate(); err != nil {
		return fmt.Errorf("vendor: %w", err)
	}
	if err := c.Build.Validate(); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	return nil
}

// Validate validates the banner widths.
func (c *HeadersConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ScriptWidth, validation.Required, validation.Min(minBannerWidth)),
		validation.Field(&c.MarkupWidth, validation.Required, validation.Min(minBannerWidth)),
	)
}

// Validate validates the vendor download settings.
func (c *VendorConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&c.Concurrency, validation.Required, validation.Min(1)),
	); err != nil {
		return err
	}
	seen := make(map[string]int, len(c.Resources))
	for i := range c.Resources {
		if err := c.Resources[i].Validate(); err != nil {
			return fmt.Errorf("resources[%d]: %w", i, err)
		}
		if j, dup := seen[c.Resources[i].Name]; dup {
			return fmt.Errorf("resources[%d]: name %q already used by resources[%d]", i, c.Resources[i].Name, j)
		}
		seen[c.Resources[i].Name] = i
	}
	return nil
}

// Validate validates a single vendor resource.
func (r *VendorResource) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required,
			validation.Match(plainFileName).Error("must be a plain file name")),
		validation.Field(&r.URL, validation.Required, is.URL,
			validation.Match(quoteSafe).Error("must not contain quotes, backslashes or line breaks")),
	)
}

// Validate validates the build step settings.
func (c *BuildConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Interpreter, validation.When(c.Script != "", validation.Required)),
	)
}
