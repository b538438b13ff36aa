package options

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of Config. Pointers tell "absent" from "empty".
type fileConfig struct {
	Separator      *string  `yaml:"separator,omitempty"`
	Escape         *string  `yaml:"escape,omitempty"`
	NullMarker     *string  `yaml:"null_marker,omitempty"`
	TrimValues     *bool    `yaml:"trim_values,omitempty"`
	IgnoreEnumCase bool     `yaml:"ignore_enum_case,omitempty"`
	NameColumn     bool     `yaml:"name_column,omitempty"`
	Format         string   `yaml:"format,omitempty"`
	Categories     []string `yaml:"categories,omitempty"`
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, filling absent fields from Default.
func Parse(data []byte) (Config, error) {
	var fc fileConfig

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg, err := applyDefaults(fc)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Marshal serializes cfg to YAML.
func Marshal(cfg Config) ([]byte, error) {
	fc := fileConfig{
		Separator:      &cfg.Separator,
		Escape:         &cfg.Escape,
		NullMarker:     &cfg.NullMarker,
		TrimValues:     &cfg.TrimValues,
		IgnoreEnumCase: cfg.IgnoreEnumCase,
		NameColumn:     cfg.NameColumn,
		Format:         cfg.Format,
	}

	for name, flag := range categoryNames {
		if flag&(flag-1) == 0 && flag != CategoryNone && cfg.Categories.Has(flag) {
			fc.Categories = append(fc.Categories, name)
		}
	}

	sort.Strings(fc.Categories)

	return yaml.Marshal(fc)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(fc fileConfig) (Config, error) {
	cfg := Default()

	if fc.Separator != nil {
		cfg.Separator = *fc.Separator
	}

	if fc.Escape != nil {
		cfg.Escape = *fc.Escape
	}

	if fc.NullMarker != nil {
		cfg.NullMarker = *fc.NullMarker
	}

	if fc.TrimValues != nil {
		cfg.TrimValues = *fc.TrimValues
	}

	if fc.Format != "" {
		cfg.Format = fc.Format
	}

	cfg.IgnoreEnumCase = fc.IgnoreEnumCase
	cfg.NameColumn = fc.NameColumn

	if len(fc.Categories) > 0 {
		categories, err := ParseCategories(fc.Categories)
		if err != nil {
			return Config{}, err
		}

		cfg.Categories = categories
	}

	return cfg, nil
}
