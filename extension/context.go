// context.go defines the Context interface for extension access to isodur
// internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// Extensions receive Context during Init(), not at construction, because
// they register before flags are parsed and configuration is loaded.

package extension

import (
	"github.com/jpl-au/isodur/duration"
	"github.com/jpl-au/isodur/internal/config"
)

// Context provides extensions controlled access to shared state.
type Context interface {
	// Config returns user configuration for respecting user preferences.
	Config() *config.Config

	// ParseOptions returns the parser options in effect: configuration
	// merged with the --strict flag.
	ParseOptions() duration.Options
}

// extContext implements Context.
type extContext struct {
	cfg    *config.Config
	strict bool
}

// NewContext creates a new extension context. When strict is set every
// parser check is enabled regardless of configuration.
func NewContext(cfg *config.Config, strict bool) Context {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &extContext{cfg: cfg, strict: strict}
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}

// ParseOptions returns the effective parser options.
func (c *extContext) ParseOptions() duration.Options {
	if c.strict {
		return duration.Strict
	}
	return c.cfg.ParseOptions()
}
