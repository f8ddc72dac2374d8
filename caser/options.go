package caser

import "fmt"

// Option is a function that configures a conversion performed by
// [ConvertWithOptions].
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion.
type convertConfig struct {
	separators string
	logger     Logger
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		// Defaults match Convert's behavior.
		separators: DefaultSeparators,
		logger:     NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// WithSeparators replaces the separator set used for tokenization.
// The set must not be empty; use Convert directly for the defaults.
func WithSeparators(separators string) Option {
	return func(cfg *convertConfig) error {
		if separators == "" {
			return fmt.Errorf("caser: separator set must not be empty")
		}
		cfg.separators = separators
		return nil
	}
}

// WithLogger sets the logger used to emit debug diagnostics during
// conversion. The default is [NopLogger].
func WithLogger(l Logger) Option {
	return func(cfg *convertConfig) error {
		if l == nil {
			return fmt.Errorf("caser: logger must not be nil")
		}
		cfg.logger = l
		return nil
	}
}
