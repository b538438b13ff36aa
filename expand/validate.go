package expand

import (
	"fmt"
	"reflect"

	"dataprovider/convert"
	"dataprovider/internal/common"
	"dataprovider/internal/diagnostic"
)

var (
	errorType  = reflect.TypeFor[error]()
	stringType = reflect.TypeFor[string]()
)

// Validate inspects a parametrized test declaration. Errors make it unusable:
// fn is not a function, returns anything but an optional error, has fewer
// parameters than leading or none to fill. With a coercer, every parameter
// also gets an info naming its text coercion route, or a warning when only
// typed rows can fill it.
func Validate(fn any, leading int, coercer *convert.Coercer) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	v := reflect.ValueOf(fn)
	if fn == nil || v.Kind() != reflect.Func || v.IsNil() {
		d.AddError(diagnostic.CodeNotAFunction, fmt.Sprintf("%T is not a function", fn), "", -1)
		return d
	}

	_, subject := common.FuncName(v)
	fnType := v.Type()

	if fnType.NumOut() > 1 || (fnType.NumOut() == 1 && fnType.Out(0) != errorType) {
		d.AddError(diagnostic.CodeBadResults, "must return nothing or a single error", subject, -1)
	}

	sig, err := convert.SignatureOf(fnType, leading)
	if err != nil {
		d.AddError(diagnostic.CodeLeadingTooLong, err.Error(), subject, -1)
		return d
	}

	if sig.Len() == 0 {
		d.AddError(diagnostic.CodeNoParameters, "has no parameters to fill from data rows", subject, -1)
		return d
	}

	if coercer == nil {
		return d
	}

	for i, param := range sig.Params {
		target := param
		if sig.Variadic && i == sig.Len()-1 {
			target = param.Elem()
		}

		route := coercer.Route(stringType, target)
		if route == convert.RouteUnknown {
			d.AddWarning(diagnostic.CodeNoStringCoercion,
				fmt.Sprintf("%s cannot be parsed from text, only typed rows can fill it", target), subject, leading+i)
			continue
		}

		d.AddInfo(diagnostic.CodeCoercionRoute, fmt.Sprintf("%s from text via %s", target, route), subject, leading+i)
	}

	return d
}
