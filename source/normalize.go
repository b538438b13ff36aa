package source

import (
	"fmt"
	"iter"
	"reflect"

	"dataprovider/options"
)

// Normalizer turns raw data sources into rows.
type Normalizer struct {
	separator string
	escape    string
	// err is the reason cfg cannot split rows; Rows reports it instead of reading.
	err error
}

func NewNormalizer(cfg options.Config) *Normalizer {
	return &Normalizer{separator: cfg.Separator, escape: cfg.Escape, err: cfg.Validate()}
}

// Rows lazily yields the rows of raw in source order. A structural problem,
// or a configuration that cannot split rows, is yielded as a
// *MalformedDataSourceError and ends the sequence. Every
// iteration reads raw again; a Provider is reopened each time.
func (n *Normalizer) Rows(raw any) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		if n.err != nil {
			yield(Row{}, malformed(-1, n.err))
			return
		}

		src := raw
		if p, ok := src.(Provider); ok {
			data, err := p.Open()
			if err != nil {
				yield(Row{}, malformed(-1, fmt.Errorf("data supplier failed: %w", err)))
				return
			}

			src = data
		}

		elems, err := elements(src)
		if err != nil {
			yield(Row{}, malformed(-1, err))
			return
		}

		index := 0
		for elem := range elems {
			row, err := n.row(index, elem)
			if !yield(row, err) || err != nil {
				return
			}

			index++
		}
	}
}

// elements iterates the top-level sequence of a data source.
func elements(raw any) (iter.Seq[reflect.Value], error) {
	if raw == nil {
		return nil, ErrNilSource
	}

	v := reflect.ValueOf(raw)

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return nil, ErrNilSource
		}

		return func(yield func(reflect.Value) bool) {
			for i := range v.Len() {
				if !yield(v.Index(i)) {
					return
				}
			}
		}, nil

	case reflect.Chan:
		if v.IsNil() || v.Type().ChanDir()&reflect.RecvDir == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotSequence, v.Type())
		}

		return v.Seq(), nil

	case reflect.Func:
		if v.IsNil() || !isSeqFunc(v.Type()) {
			return nil, fmt.Errorf("%w: %s", ErrNotSequence, v.Type())
		}

		return v.Seq(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrNotSequence, v.Type())
	}
}

// isSeqFunc matches func(yield func(T) bool), the shape of iter.Seq.
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}

	yield := t.In(0)

	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 && yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

func (n *Normalizer) row(index int, elem reflect.Value) (Row, error) {
	for elem.Kind() == reflect.Interface && !elem.IsNil() {
		elem = elem.Elem()
	}

	if isNil(elem) {
		return Row{}, malformed(index, ErrNilRow)
	}

	raw := elem.Interface()

	switch {
	case elem.Type() == stringType:
		parts := Split(elem.String(), n.separator, n.escape)
		columns := make([]any, len(parts))
		for i, p := range parts {
			columns[i] = p
		}

		return Row{Index: index, Shape: ShapeDelimited, Raw: raw, Columns: columns}, nil

	case (elem.Kind() == reflect.Slice || elem.Kind() == reflect.Array) && elem.Type().Elem().Kind() != reflect.Uint8:
		columns := make([]any, elem.Len())
		for i := range elem.Len() {
			columns[i] = elem.Index(i).Interface()
		}

		return Row{Index: index, Shape: ShapeColumns, Raw: raw, Columns: columns}, nil

	default:
		return Row{Index: index, Shape: ShapeScalar, Raw: raw, Columns: []any{raw}}, nil
	}
}

var stringType = reflect.TypeFor[string]()

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

func columnString(c any) string {
	if c == nil {
		return "<nil>"
	}

	return fmt.Sprint(c)
}
