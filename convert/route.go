package convert

import (
	"encoding"
	"reflect"

	"dataprovider/options"
	"dataprovider/primitive"
)

//go:generate go tool stringer -type=RouteEnum -trimprefix=Route -output=route_string.go

// RouteEnum names the strategy a Coercer uses to turn a source type into a target type.
type RouteEnum int

const (
	RouteUnknown         RouteEnum = iota
	RouteIdentity                  // source is assignable to the target
	RoutePrimitive                 // text parsed with the grammar of a scalar kind
	RouteEnumMember                // text matched against enum member names
	RouteRegistry                  // registered caster function
	RoutePointer                   // coerce to the element, then take its address
	RouteTextUnmarshaler           // encoding.TextUnmarshaler on the target
	RouteNumber                    // typed number converted to another number kind
	RouteText                      // named string type re-read as plain text
	RouteStringify                 // canonical string form of a typed value
	RouteSlice                     // element-wise conversion of a sequence

	// RouteTotal is a constant that represents the total number of routes defined
	RouteTotal = int(iota)
)

type validator interface {
	IsValid() bool
}

var (
	stringType          = reflect.TypeFor[string]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	validatorType       = reflect.TypeFor[validator]()
)

// Route picks how a value of type src becomes dst. The choice depends on the
// types, the enabled categories and the registry, never on the value itself.
//
// Text sources try, in order: predeclared scalars, registered casters,
// pointers, enums, time types, encoding.TextUnmarshaler and finally the
// storage kind of named scalar types. Typed sources try registered casters,
// pointers, number conversion, re-reading named strings as text, the
// canonical string form and element-wise sequence conversion.
func (c *Coercer) Route(src, dst reflect.Type) RouteEnum {
	switch {
	case src == nil || dst == nil:
		return RouteUnknown
	case src.AssignableTo(dst):
		return RouteIdentity
	case src == stringType:
		return c.stringRoute(dst)
	default:
		return c.valueRoute(src, dst)
	}
}

func (c *Coercer) stringRoute(dst reflect.Type) RouteEnum {
	_, registered := c.registry.Lookup(stringType, dst)

	switch {
	case isBuiltinScalar(dst):
		return RoutePrimitive
	case registered:
		return RouteRegistry
	case dst.Kind() == reflect.Ptr:
		if c.Route(stringType, dst.Elem()) == RouteUnknown {
			return RouteUnknown
		}
		return RoutePointer
	case c.isEnum(dst):
		return RouteEnumMember
	case isTimeKind(dst):
		return RoutePrimitive
	case c.allowed.Has(options.CategoryTextUnmarshaler) && reflect.PointerTo(dst).Implements(textUnmarshalerType):
		return RouteTextUnmarshaler
	case primitive.Underlying(dst) != 0:
		return RoutePrimitive
	default:
		return RouteUnknown
	}
}

func (c *Coercer) valueRoute(src, dst reflect.Type) RouteEnum {
	_, registered := c.registry.Lookup(src, dst)

	switch {
	case registered:
		return RouteRegistry
	case dst.Kind() == reflect.Ptr && c.Route(src, dst.Elem()) != RouteUnknown:
		return RoutePointer
	case primitive.Underlying(src).IsNumber() && primitive.Underlying(dst).IsNumber():
		return RouteNumber
	case src.Kind() == reflect.String && c.stringRoute(dst) != RouteUnknown:
		return RouteText
	case dst.Kind() == reflect.String && !c.isEnum(dst):
		return RouteStringify
	case isSequence(src) && dst.Kind() == reflect.Slice:
		if src.Elem().Kind() != reflect.Interface && c.Route(src.Elem(), dst.Elem()) == RouteUnknown {
			return RouteUnknown
		}
		return RouteSlice
	default:
		return RouteUnknown
	}
}

func (c *Coercer) isEnum(rtype reflect.Type) bool {
	if len(c.registry.enum(rtype)) > 0 {
		return true
	}

	return isValidatedString(rtype)
}

// isValidatedString matches named string types with an IsValid method, the
// enums whose members are not registered.
func isValidatedString(rtype reflect.Type) bool {
	return primitive.FromReflectType(rtype) == primitive.KindPrimitiveEnum &&
		rtype.Kind() == reflect.String &&
		rtype.Implements(validatorType)
}

// isBuiltinScalar matches the predeclared scalar types (int, string, bool, ...),
// whose grammar no registered caster may override.
func isBuiltinScalar(rtype reflect.Type) bool {
	return rtype.PkgPath() == "" && primitive.Underlying(rtype) != 0
}

func isTimeKind(rtype reflect.Type) bool {
	kind := primitive.FromReflectType(rtype)
	return kind == primitive.KindTime || kind == primitive.KindDuration
}

func isSequence(rtype reflect.Type) bool {
	return rtype.Kind() == reflect.Slice || rtype.Kind() == reflect.Array
}

// Nullable reports whether rtype can hold nil, which makes the null marker apply to it.
func Nullable(rtype reflect.Type) bool {
	switch rtype.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
