package convert

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"dataprovider/internal/match"
	"dataprovider/options"
	"dataprovider/primitive"
)

var ErrLossyNumber = errors.New("number does not fit the target type, or the conversion category is disabled")

// Coercer converts single raw values into values of a target type.
// It holds no per-row state and is safe for concurrent use.
type Coercer struct {
	registry       *Registry
	nullMarker     string
	trim           bool
	ignoreEnumCase bool
	allowed        options.CategoryEnum
}

// NewCoercer builds a coercer from cfg. A nil registry means DefaultRegistry.
func NewCoercer(cfg options.Config, registry *Registry) *Coercer {
	if registry == nil {
		registry = DefaultRegistry
	}

	return &Coercer{
		registry:       registry,
		nullMarker:     cfg.NullMarker,
		trim:           cfg.TrimValues,
		ignoreEnumCase: cfg.IgnoreEnumCase,
		allowed:        cfg.Categories,
	}
}

// WithNullMarker returns a copy of c using marker as the null token.
// An empty marker disables null conversion.
func (c *Coercer) WithNullMarker(marker string) *Coercer {
	clone := *c
	clone.nullMarker = marker

	return &clone
}

// Coerce converts raw into a value of target.
//
// A raw value already assignable to target is returned unchanged. Strings are
// parsed; typed values are converted. nil and the null marker give the zero
// value of nullable targets and fail for the others.
func (c *Coercer) Coerce(raw any, target reflect.Type) (reflect.Value, error) {
	if raw == nil {
		if !Nullable(target) {
			return reflect.Value{}, &ConversionError{Target: target, Err: ErrNotNullable}
		}

		return reflect.Zero(target), nil
	}

	if s, ok := raw.(string); ok {
		return c.coerceString(s, target)
	}

	return c.coerceValue(reflect.ValueOf(raw), target)
}

// CoerceTo is the typed form of Coercer.Coerce.
func CoerceTo[T any](c *Coercer, raw any) (T, error) {
	v, err := c.Coerce(raw, reflect.TypeFor[T]())
	if err != nil {
		var zero T
		return zero, err
	}

	t, _ := v.Interface().(T)

	return t, nil
}

func (c *Coercer) coerceString(s string, target reflect.Type) (reflect.Value, error) {
	if c.trim {
		s = strings.TrimSpace(s)
	}

	if c.nullMarker != "" && s == c.nullMarker && Nullable(target) {
		return reflect.Zero(target), nil
	}

	return c.fromString(s, target)
}

func (c *Coercer) fromString(s string, target reflect.Type) (reflect.Value, error) {
	switch c.Route(stringType, target) {
	case RouteIdentity:
		return assign(reflect.ValueOf(s), target), nil

	case RoutePrimitive:
		v, err := primitive.Parse(s, target, c.allowed)
		if err != nil {
			return reflect.Value{}, &ConversionError{Raw: s, Target: target, Err: err}
		}
		return v, nil

	case RouteRegistry:
		caster, _ := c.registry.Lookup(stringType, target)
		return cast(caster, reflect.ValueOf(s), s, target)

	case RoutePointer:
		elem, err := c.fromString(s, target.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		return addressOf(elem, target), nil

	case RouteEnumMember:
		return c.parseEnum(s, target)

	case RouteTextUnmarshaler:
		ptr := reflect.New(target)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return reflect.Value{}, &ConversionError{Raw: s, Target: target, Err: err}
		}
		return ptr.Elem(), nil

	default:
		return reflect.Value{}, &UnsupportedConversionError{Raw: s, Target: target}
	}
}

func (c *Coercer) coerceValue(v reflect.Value, target reflect.Type) (reflect.Value, error) {
	switch c.Route(v.Type(), target) {
	case RouteIdentity:
		return assign(v, target), nil

	case RouteRegistry:
		caster, _ := c.registry.Lookup(v.Type(), target)
		return cast(caster, v, v.Interface(), target)

	case RoutePointer:
		elem, err := c.coerceValue(v, target.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		return addressOf(elem, target), nil

	case RouteNumber:
		out, ok := primitive.ConvertNumber(v, target, c.allowed)
		if !ok {
			return reflect.Value{}, &ConversionError{Raw: v.Interface(), Target: target, Err: ErrLossyNumber}
		}
		return out, nil

	case RouteText:
		return c.coerceString(v.String(), target)

	case RouteStringify:
		out := reflect.New(target).Elem()
		out.SetString(Stringify(v))
		return out, nil

	case RouteSlice:
		out := reflect.MakeSlice(target, v.Len(), v.Len())
		for i := range v.Len() {
			elem, err := c.Coerce(v.Index(i).Interface(), target.Elem())
			if err != nil {
				return reflect.Value{}, &ConversionError{
					Raw:    v.Interface(),
					Target: target,
					Err:    fmt.Errorf("element %d: %w", i, err),
				}
			}
			out.Index(i).Set(elem)
		}
		return out, nil

	default:
		return reflect.Value{}, &UnsupportedConversionError{Raw: v.Interface(), Target: target}
	}
}

func (c *Coercer) parseEnum(s string, target reflect.Type) (reflect.Value, error) {
	if !c.allowed.Has(options.CategoryEnumString) {
		return reflect.Value{}, &ConversionError{
			Raw:    s,
			Target: target,
			Err:    fmt.Errorf("%w: %s", primitive.ErrCategoryForbidden, options.CategoryEnumString),
		}
	}

	if v, ok := c.registry.lookupEnum(target, s, c.ignoreEnumCase); ok {
		return assign(v, target), nil
	}

	if isValidatedString(target) {
		candidates := []string{s}
		if c.ignoreEnumCase {
			candidates = append(candidates, strings.ToUpper(s), strings.ToLower(s))
		}

		for _, candidate := range candidates {
			v := reflect.ValueOf(candidate).Convert(target)
			if v.Interface().(validator).IsValid() {
				return v, nil
			}
		}
	}

	hint, _ := match.Closest(s, c.registry.EnumNames(target))

	return reflect.Value{}, &ConversionError{Raw: s, Target: target, Hint: hint, Err: ErrUnknownEnumMember}
}

func cast(caster Caster, v reflect.Value, raw any, target reflect.Type) (reflect.Value, error) {
	out, err := caster.Call(v)
	if err != nil {
		return reflect.Value{}, &ConversionError{Raw: raw, Target: target, Err: err}
	}

	return assign(out, target), nil
}

func assign(v reflect.Value, target reflect.Type) reflect.Value {
	if v.Type() == target {
		return v
	}

	out := reflect.New(target).Elem()
	out.Set(v)

	return out
}

func addressOf(elem reflect.Value, target reflect.Type) reflect.Value {
	ptr := reflect.New(target.Elem())
	ptr.Elem().Set(elem)

	return ptr
}
