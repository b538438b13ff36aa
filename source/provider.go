package source

import (
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

var errorType = reflect.TypeFor[error]()

// Provider produces a raw data source when iteration starts.
type Provider interface {
	Open() (any, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() (any, error)

func (f ProviderFunc) Open() (any, error) { return f() }

// FromFunc wraps a data-supplying function, func() T or func() (T, error).
// The function runs again every time the rows are iterated.
func FromFunc(fn any) Provider {
	return ProviderFunc(func() (any, error) {
		v := reflect.ValueOf(fn)
		if v.Kind() != reflect.Func || v.IsNil() {
			return nil, ErrBadSupplier
		}

		t := v.Type()
		if t.NumIn() != 0 {
			return nil, ErrBadSupplier
		}

		switch {
		case t.NumOut() == 1:
			return v.Call(nil)[0].Interface(), nil

		case t.NumOut() == 2 && t.Out(1).Implements(errorType):
			out := v.Call(nil)
			if !out[1].IsNil() {
				return nil, out[1].Interface().(error)
			}
			return out[0].Interface(), nil

		default:
			return nil, ErrBadSupplier
		}
	})
}

// dataFile is the YAML shape of an external data file.
type dataFile struct {
	Rows []any `yaml:"rows"`
}

// LoadYAML reads the rows list of a YAML data file. Strings are delimited
// rows, lists are columns and other scalars are one-column rows.
func LoadYAML(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}

	return ParseYAML(data)
}

// ParseYAML parses the rows list of YAML data.
func ParseYAML(data []byte) ([]any, error) {
	var df dataFile

	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("failed to parse data YAML: %w", err)
	}

	return df.Rows, nil
}

// File is a Provider reading path with LoadYAML on every iteration.
func File(path string) Provider {
	return ProviderFunc(func() (any, error) {
		return LoadYAML(path)
	})
}
