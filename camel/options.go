package camel

import "github.com/erraggy/keycase/keyerrors"

// Option configures ConvertWithOptions.
type Option func(*convertConfig)

type convertConfig struct {
	value    Value
	native   any
	isNative bool
	hasValue bool
	acronyms Acronyms
	mode     Mode
	maxDepth int
}

// WithValue sets the value to convert. It is required.
func WithValue(v Value) Option {
	return func(c *convertConfig) {
		c.value = v
		c.native, c.isNative = nil, false
		c.hasValue = true
	}
}

// WithAny sets a plain Go value to convert; see FromAny. It is read under
// the same depth limit as the conversion itself.
func WithAny(v any) Option {
	return func(c *convertConfig) {
		c.value = nil
		c.native, c.isNative = v, true
		c.hasValue = true
	}
}

// WithAcronyms sets the acronym table.
func WithAcronyms(acronyms Acronyms) Option {
	return func(c *convertConfig) {
		c.acronyms = acronyms
	}
}

// WithMode selects CamelCase (the default) or camelBack output.
func WithMode(mode Mode) Option {
	return func(c *convertConfig) {
		c.mode = mode
	}
}

// WithMaxDepth sets the nesting limit.
// If depth is not positive, it is silently ignored and DefaultMaxDepth is kept.
func WithMaxDepth(depth int) Option {
	return func(c *convertConfig) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// ConvertWithOptions converts a value using functional options.
//
// Example:
//
//	out, err := camel.ConvertWithOptions(
//	    camel.WithAny(payload),
//	    camel.WithMode(camel.ModeCamelBack),
//	    camel.WithAcronyms(camel.Acronyms{"id": "ID"}),
//	)
func ConvertWithOptions(opts ...Option) (Value, error) {
	cfg := &convertConfig{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.hasValue {
		return nil, &keyerrors.ConfigError{
			Option:  "value",
			Message: "must specify a value with WithValue or WithAny",
		}
	}
	if cfg.mode != ModeCamelCase && cfg.mode != ModeCamelBack {
		return nil, &keyerrors.ConfigError{
			Option:  "mode",
			Value:   cfg.mode,
			Message: "unknown mode",
		}
	}

	if cfg.isNative {
		v, err := fromAny(cfg.native, 0, cfg.maxDepth)
		if err != nil {
			return nil, err
		}
		cfg.value = v
	}

	c := Converter{Acronyms: cfg.acronyms, MaxDepth: cfg.maxDepth}
	return c.Convert(cfg.value, cfg.mode)
}
