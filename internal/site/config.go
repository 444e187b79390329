// Package site holds the extraction configuration built by the wizard and
// the records exchanged with the site service.
package site

import "maps"

// Request delay bounds, in seconds.
const (
	MinRequestDelay     = 0.5
	MaxRequestDelay     = 10.0
	DefaultRequestDelay = 2.0
)

// Config is the site definition handed to the test and create operations.
type Config struct {
	Name          string            `json:"name" yaml:"name"`
	Domain        string            `json:"domain" yaml:"domain"`
	UseJavaScript bool              `json:"use_javascript" yaml:"use_javascript"`
	RequiresProxy bool              `json:"requires_proxy" yaml:"requires_proxy"`
	RequestDelay  float64           `json:"request_delay" yaml:"request_delay"`
	Selectors     *SelectorMap      `json:"selectors" yaml:"selectors"`
	Headers       map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	CustomLogic   map[string]any    `json:"custom_logic,omitempty" yaml:"custom_logic,omitempty"`
}

// NewConfig returns an empty configuration with default settings.
func NewConfig() Config {
	return Config{
		UseJavaScript: true,
		RequestDelay:  DefaultRequestDelay,
		Selectors:     NewSelectorMap(),
	}
}

// Clone returns a deep copy of the selector map and headers. CustomLogic is
// opaque and copied shallowly.
func (c Config) Clone() Config {
	out := c
	if c.Selectors != nil {
		out.Selectors = c.Selectors.Clone()
	} else {
		out.Selectors = NewSelectorMap()
	}
	out.Headers = maps.Clone(c.Headers)
	out.CustomLogic = maps.Clone(c.CustomLogic)
	return out
}

// DelayInRange reports whether d is an accepted request delay.
func DelayInRange(d float64) bool {
	return d >= MinRequestDelay && d <= MaxRequestDelay
}
