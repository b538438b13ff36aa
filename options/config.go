package options

import (
	"errors"
	"fmt"
)

const (
	DefaultSeparator  = "|"
	DefaultEscape     = `\`
	DefaultNullMarker = "null"
	DefaultFormat     = "[%i] %a[0..-1]"
)

var ErrEmptySeparator = errors.New("column separator must not be empty")

// Config holds the per-declaration settings of a parametrized test.
type Config struct {
	// Separator splits delimited string rows into columns.
	Separator string
	// Escape makes the following separator (or escape) literal. Empty disables escaping.
	Escape string
	// NullMarker is converted to nil for null-representable targets. Empty disables it.
	NullMarker string
	// TrimValues strips surrounding whitespace from string columns before coercion.
	TrimValues bool
	// IgnoreEnumCase matches enum member names case-insensitively.
	IgnoreEnumCase bool
	// NameColumn declares a trailing column holding the display name of the case.
	NameColumn bool
	// Format is the display name pattern.
	Format string
	// Categories gates the coercions the converter may apply.
	Categories CategoryEnum
}

type Option func(*Config)

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Separator:  DefaultSeparator,
		Escape:     DefaultEscape,
		NullMarker: DefaultNullMarker,
		TrimValues: true,
		Format:     DefaultFormat,
		Categories: CategoryDefault,
	}
}

// New applies opts on top of Default.
func New(opts ...Option) Config {
	cfg := Default()
	cfg.Apply(opts...)

	return cfg
}

func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Validate rejects settings that make splitting ambiguous.
func (c Config) Validate() error {
	if c.Separator == "" {
		return ErrEmptySeparator
	}

	if c.Escape != "" && c.Escape == c.Separator {
		return fmt.Errorf("escape %q must differ from separator", c.Escape)
	}

	return nil
}

func WithSeparator(sep string) Option { return func(c *Config) { c.Separator = sep } }

func WithEscape(escape string) Option { return func(c *Config) { c.Escape = escape } }

func WithNullMarker(marker string) Option { return func(c *Config) { c.NullMarker = marker } }

// WithoutNullConversion keeps every marker-looking column as literal text.
func WithoutNullConversion() Option { return func(c *Config) { c.NullMarker = "" } }

func WithTrimValues(trim bool) Option { return func(c *Config) { c.TrimValues = trim } }

func WithIgnoreEnumCase() Option { return func(c *Config) { c.IgnoreEnumCase = true } }

func WithNameColumn() Option { return func(c *Config) { c.NameColumn = true } }

func WithFormat(format string) Option { return func(c *Config) { c.Format = format } }

func WithCategories(categories CategoryEnum) Option {
	return func(c *Config) { c.Categories = categories }
}

// WithConfig replaces the whole configuration, typically one read by LoadFile.
func WithConfig(cfg Config) Option { return func(c *Config) { *c = cfg } }
