package convert

import (
	"reflect"

	"dataprovider/source"
)

// Arguments is the converted form of one row.
type Arguments struct {
	// Values has one entry per signature parameter; a variadic parameter gets its slice.
	Values []reflect.Value
	// Name is the trailing name column, valid when Named is set.
	Name  string
	Named bool
}

// Interfaces returns the argument values as plain interfaces.
func (a Arguments) Interfaces() []any {
	out := make([]any, len(a.Values))
	for i, v := range a.Values {
		out[i] = v.Interface()
	}

	return out
}

// RowConverter converts whole rows against a Signature.
type RowConverter struct {
	coercer *Coercer
}

func NewRowConverter(coercer *Coercer) *RowConverter {
	return &RowConverter{coercer: coercer}
}

// Convert produces the arguments of row. The first column that fails stops
// the conversion; no partial Arguments are returned.
//
// A callable with a single plain parameter receives a delimited row unsplit,
// and an explicit row that is itself assignable to that parameter as is.
func (rc *RowConverter) Convert(row source.Row, sig Signature) (Arguments, error) {
	if whole, ok := wholeRow(row, sig); ok {
		v, err := rc.coercer.Coerce(whole, sig.Params[0])
		if err != nil {
			return Arguments{}, &RowConversionError{Row: row.Index, Column: 0, Err: err}
		}

		return Arguments{Values: []reflect.Value{v}}, nil
	}

	columns := row.Columns

	named, err := sig.Arity(row.Index, len(columns))
	if err != nil {
		return Arguments{}, err
	}

	var args Arguments
	if named {
		last := len(columns) - 1
		args.Name, args.Named = nameOf(columns[last]), true
		columns = columns[:last]
	}

	values := make([]reflect.Value, 0, sig.Len())
	for i := range sig.Fixed() {
		v, err := rc.coercer.Coerce(columns[i], sig.Params[i])
		if err != nil {
			return Arguments{}, &RowConversionError{Row: row.Index, Column: i, Err: err}
		}

		values = append(values, v)
	}

	if sig.Variadic {
		v, err := rc.variadic(row.Index, columns[sig.Fixed():], sig.Fixed(), sig.Params[sig.Len()-1])
		if err != nil {
			return Arguments{}, err
		}

		values = append(values, v)
	}

	args.Values = values

	return args, nil
}

// variadic packs the trailing columns into the variadic slice. A single
// column already holding such a slice is passed through.
func (rc *RowConverter) variadic(row int, rest []any, offset int, sliceType reflect.Type) (reflect.Value, error) {
	if len(rest) == 1 && rest[0] != nil {
		if v := reflect.ValueOf(rest[0]); v.Type().AssignableTo(sliceType) {
			return assign(v, sliceType), nil
		}
	}

	out := reflect.MakeSlice(sliceType, len(rest), len(rest))
	for i, raw := range rest {
		v, err := rc.coercer.Coerce(raw, sliceType.Elem())
		if err != nil {
			return reflect.Value{}, &RowConversionError{Row: row, Column: offset + i, Err: err}
		}

		out.Index(i).Set(v)
	}

	return out, nil
}

func wholeRow(row source.Row, sig Signature) (any, bool) {
	if sig.Len() != 1 || sig.Variadic || sig.NameColumn {
		return nil, false
	}

	switch row.Shape {
	case source.ShapeDelimited:
		return row.Raw, true
	case source.ShapeColumns:
		if row.Raw != nil && reflect.TypeOf(row.Raw).AssignableTo(sig.Params[0]) {
			return row.Raw, true
		}
	}

	return nil, false
}

func nameOf(column any) string {
	if s, ok := column.(string); ok {
		return s
	}

	if column == nil {
		return "<nil>"
	}

	return Stringify(reflect.ValueOf(column))
}
