package primitive

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"dataprovider/options"
)

var (
	ErrNotPrimitive      = errors.New("type is not a primitive kind")
	ErrCategoryForbidden = errors.New("conversion category is not enabled")
	ErrInvalidBool       = errors.New("expected true or false")
)

var dateLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// Parse converts s into a value of rtype using the canonical textual grammar of
// its underlying kind. Named types are parsed as their storage kind.
//
// Integers accept an optional sign and a 0x, 0o or 0b prefix; anything else is
// decimal, so "010" is ten. Values that overflow the target width fail, and
// so does any fractional text for an integer target.
func Parse(s string, rtype reflect.Type, allowed options.CategoryEnum) (reflect.Value, error) {
	kind := Underlying(rtype)
	out := reflect.New(rtype).Elem()

	switch {
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotPrimitive, rtype)

	case kind == 0:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotPrimitive, rtype)

	case kind == KindString:
		out.SetString(s)

	case kind == KindBool:
		b, err := parseBool(s, allowed)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetBool(b)

	case kind == KindTime:
		if !allowed.Has(options.CategoryDatetime) {
			return reflect.Value{}, categoryError(options.CategoryDatetime)
		}
		t, err := parseTime(s)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Set(reflect.ValueOf(t))

	case kind == KindDuration:
		if !allowed.Has(options.CategoryDuration) {
			return reflect.Value{}, categoryError(options.CategoryDuration)
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetInt(int64(d))

	case !allowed.Has(options.CategoryTextNumber):
		return reflect.Value{}, categoryError(options.CategoryTextNumber)

	case kind.IsSigned():
		i, err := parseInt(s, kind.Bits())
		if err != nil && kind == KindInt32 && allowed.Has(options.CategoryRune) {
			if r, ok := singleRune(s); ok {
				i, err = int64(r), nil
			}
		}
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetInt(i)

	case kind.IsUnsigned():
		u, err := parseUint(s, kind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetUint(u)

	case kind.IsFloat():
		f, err := strconv.ParseFloat(s, kind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetFloat(f)

	case kind.IsComplex():
		c, err := strconv.ParseComplex(s, kind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetComplex(c)
	}

	return out, nil
}

func categoryError(category options.CategoryEnum) error {
	return fmt.Errorf("%w: %s", ErrCategoryForbidden, category)
}

func parseBool(s string, allowed options.CategoryEnum) (bool, error) {
	if allowed.Has(options.CategoryTextualBool) {
		switch {
		case strings.EqualFold(s, "true"):
			return true, nil
		case strings.EqualFold(s, "false"):
			return false, nil
		}
	}

	if allowed.Has(options.CategoryLenientBool) {
		switch strings.ToLower(s) {
		case "yes", "on", "1":
			return true, nil
		case "no", "off", "0":
			return false, nil
		}
	}

	if !allowed.Has(options.CategoryTextualBool) && !allowed.Has(options.CategoryLenientBool) {
		return false, categoryError(options.CategoryTextualBool)
	}

	return false, fmt.Errorf("%w, got %q", ErrInvalidBool, s)
}

func parseTime(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	return time.Time{}, firstErr
}

// splitIntLiteral separates the sign and base prefix of an integer literal.
func splitIntLiteral(s string) (sign, digits string, base int) {
	digits, base = s, 10
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		sign, digits = digits[:1], digits[1:]
	}

	if len(digits) >= 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}

		if base != 10 {
			digits = digits[2:]
		}
	}

	return sign, digits, base
}

func parseInt(s string, bits int) (int64, error) {
	sign, digits, base := splitIntLiteral(s)
	if strings.HasPrefix(digits, "+") || strings.HasPrefix(digits, "-") {
		return 0, &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrSyntax}
	}

	i, err := strconv.ParseInt(sign+digits, base, bits)
	if err != nil {
		return 0, &strconv.NumError{Func: "ParseInt", Num: s, Err: unwrapNum(err)}
	}

	return i, nil
}

func parseUint(s string, bits int) (uint64, error) {
	sign, digits, base := splitIntLiteral(s)
	if sign == "-" {
		return 0, &strconv.NumError{Func: "ParseUint", Num: s, Err: strconv.ErrRange}
	}

	u, err := strconv.ParseUint(digits, base, bits)
	if err != nil {
		return 0, &strconv.NumError{Func: "ParseUint", Num: s, Err: unwrapNum(err)}
	}

	return u, nil
}

func unwrapNum(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}

	return err
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, false
	}

	return r, true
}
