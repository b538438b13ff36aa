package options

import (
	"fmt"
	"sort"
	"strings"
)

// CategoryEnum selects which families of coercion the converter may apply.
type CategoryEnum int

const (
	CategorySafeNumber      CategoryEnum = 1 << iota // typed int, uint, float widening without precision loss
	CategoryUnsafeNumber                             // typed number narrowing, accepted only when the value survives the round trip
	CategoryTextNumber                               // string -> int, uint, float, complex: textual number representation
	CategoryTextualBool                              // string -> bool: true, false (case-insensitive)
	CategoryLenientBool                              // string -> bool: yes, no, on, off, 1, 0 on top of true and false
	CategoryDatetime                                 // string(RFC3339Nano or 2006-01-02) -> time.Time
	CategoryDuration                                 // string(2h45m) -> time.Duration
	CategoryEnumString                               // string -> enum: member names of registered enums and IsValid string types
	CategoryRune                                     // string -> rune: a single character for int32 targets that is not a number
	CategoryTextUnmarshaler                          // string -> T: T implements encoding.TextUnmarshaler

	CategoryAll     = (1 << iota) - 1 //all categories combined
	CategoryNone    = 0               // no categories selected
	CategoryDefault = CategoryAll &^ (CategoryUnsafeNumber | CategoryLenientBool)
)

var categoryNames = map[string]CategoryEnum{
	"safe_number":      CategorySafeNumber,
	"unsafe_number":    CategoryUnsafeNumber,
	"text_number":      CategoryTextNumber,
	"textual_bool":     CategoryTextualBool,
	"lenient_bool":     CategoryLenientBool,
	"datetime":         CategoryDatetime,
	"duration":         CategoryDuration,
	"enum_string":      CategoryEnumString,
	"rune":             CategoryRune,
	"text_unmarshaler": CategoryTextUnmarshaler,
	"all":              CategoryAll,
	"default":          CategoryDefault,
	"none":             CategoryNone,
}

// Has reports whether every flag of other is set in c.
func (c CategoryEnum) Has(other CategoryEnum) bool {
	return c&other == other
}

func (c CategoryEnum) String() string {
	if c == CategoryNone {
		return "none"
	}

	var names []string
	for name, flag := range categoryNames {
		if flag&(flag-1) != 0 || flag == CategoryNone {
			continue // skip combined values
		}

		if c.Has(flag) {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return strings.Join(names, "|")
}

// ParseCategories combines named categories, e.g. "default" and "lenient_bool".
func ParseCategories(names []string) (CategoryEnum, error) {
	var out CategoryEnum
	for _, name := range names {
		flag, ok := categoryNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return CategoryNone, fmt.Errorf("unknown conversion category %q", name)
		}

		out |= flag
	}

	return out, nil
}
