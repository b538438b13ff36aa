package expand

import (
	"encoding"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/davecgh/go-spew/spew"

	"dataprovider/convert"
	"dataprovider/internal/common"
	"dataprovider/utils"
)

const (
	nilString         = "<nil>"
	emptyString       = "<empty string>"
	nonPrintable      = "<np>"
	argumentSeparator = ", "
)

// dumper renders composite arguments deterministically: no addresses, no
// capacities, sorted map keys.
var dumper = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

var escapes = strings.NewReplacer("\x00", `\0`, "\r", `\r`, "\n", `\n`)

// Context is what a name pattern is rendered from.
type Context struct {
	Callable *Callable
	Index    int
	// Args are the converted arguments, or the raw columns of a row that failed to convert.
	Args []any
}

// Placeholder is a custom %Token of a name pattern.
type Placeholder struct {
	Token  string
	Render func(ctx Context) string
}

// Formatter renders case names from a pattern with the placeholders
//
//	%c    package name              %cc   package import path
//	%m    function name             %cm   complete signature
//	%i    row index
//	%a[x] %p[x] arguments: x is an index or a range a..b, negative from the end
//
// plus any custom placeholders. Text substituted for a placeholder is never
// scanned again.
type Formatter struct {
	pattern string
	re      *regexp.Regexp
	custom  map[string]func(Context) string
}

func NewFormatter(pattern string, custom ...Placeholder) *Formatter {
	f := &Formatter{pattern: pattern, custom: make(map[string]func(Context) string)}

	tokens := []string{"cc", "cm", "c", "m", "i"}
	for _, p := range custom {
		f.custom[p.Token] = p.Render
		tokens = append(tokens, p.Token)
	}

	// longest first, so %cc is never read as %c followed by "c"
	slices.SortStableFunc(tokens, func(a, b string) int { return len(b) - len(a) })

	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = regexp.QuoteMeta(t)
	}

	f.re = regexp.MustCompile(`%[ap]\[(-?[0-9]+)(?:\.\.(-?[0-9]+))?\]|%(` + strings.Join(quoted, "|") + `)`)

	return f
}

// Pattern returns the pattern the formatter renders.
func (f *Formatter) Pattern() string { return f.pattern }

// Format renders the name of one case.
func (f *Formatter) Format(ctx Context) (string, error) {
	var sb strings.Builder

	last := 0
	for _, m := range f.re.FindAllStringSubmatchIndex(f.pattern, -1) {
		sb.WriteString(f.pattern[last:m[0]])
		last = m[1]

		placeholder := f.pattern[m[0]:m[1]]

		if m[6] >= 0 {
			sb.WriteString(f.token(f.pattern[m[6]:m[7]], ctx))
			continue
		}

		from, to, err := subscript(f.pattern, m, len(ctx.Args))
		if err != nil {
			return "", &FormatError{Pattern: f.pattern, Placeholder: placeholder, Err: err}
		}

		sb.WriteString(FormatArgs(ctx.Args[from:to]))
	}

	sb.WriteString(f.pattern[last:])

	return sb.String(), nil
}

func (f *Formatter) token(token string, ctx Context) string {
	if render, ok := f.custom[token]; ok {
		return render(ctx)
	}

	switch token {
	case "cc":
		return ctx.Callable.Package()
	case "cm":
		return ctx.Callable.String()
	case "c":
		return common.PkgAlias(ctx.Callable.Package())
	case "m":
		return ctx.Callable.Name()
	case "i":
		return strconv.Itoa(ctx.Index)
	default:
		return "%" + token
	}
}

// subscript resolves the argument range of an %a match to a half-open [from, to).
func subscript(pattern string, m []int, n int) (from, to int, err error) {
	start, _ := strconv.Atoi(pattern[m[2]:m[3]])
	end := start
	if m[4] >= 0 {
		end, _ = strconv.Atoi(pattern[m[4]:m[5]])
	}

	from, to = utils.FromEnd(start, n), utils.FromEnd(end, n)+1
	if from < 0 || to > n || from > to {
		return 0, 0, fmt.Errorf("%w: %d arguments", ErrSubscriptOutOfRange, n)
	}

	return from, to, nil
}

// FormatArgs renders arguments separated by ", ".
func FormatArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = FormatArg(a)
	}

	return strings.Join(parts, argumentSeparator)
}

// FormatArg renders one argument for a case name: nil as <nil>, "" as
// <empty string>, pointers by their target, slices and arrays as [a, b].
// Control characters are escaped (\0, \r, \n) or shown as <np>.
func FormatArg(arg any) string {
	return formatValue(reflect.ValueOf(arg))
}

func formatValue(v reflect.Value) string {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr) && !v.IsNil() {
		if v.Kind() == reflect.Ptr && hasTextForm(v) {
			break
		}

		v = v.Elem()
	}

	switch {
	case !v.IsValid() || (convert.Nullable(v.Type()) && v.IsNil()):
		return nilString

	case v.Kind() == reflect.Slice || v.Kind() == reflect.Array:
		parts := make([]string, v.Len())
		for i := range v.Len() {
			parts[i] = formatValue(v.Index(i))
		}
		return "[" + strings.Join(parts, argumentSeparator) + "]"

	case v.Kind() == reflect.String && v.Len() == 0:
		return emptyString

	case (v.Kind() == reflect.Struct || v.Kind() == reflect.Map) && !hasTextForm(v):
		return sanitize(dumper.Sprint(v.Interface()))

	default:
		return sanitize(convert.Stringify(v))
	}
}

func hasTextForm(v reflect.Value) bool {
	if !v.CanInterface() {
		return false
	}

	switch v.Interface().(type) {
	case fmt.Stringer, encoding.TextMarshaler, error:
		return true
	default:
		return false
	}
}

func sanitize(s string) string {
	s = escapes.Replace(s)

	if strings.IndexFunc(s, isNonPrintable) < 0 {
		return s
	}

	var sb strings.Builder
	for _, r := range s {
		if isNonPrintable(r) {
			sb.WriteString(nonPrintable)
			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

func isNonPrintable(r rune) bool {
	return r == unicode.ReplacementChar || unicode.In(r, unicode.Cc, unicode.Cf, unicode.Co, unicode.Cs)
}
