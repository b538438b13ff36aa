package source

import (
	"strings"
)

// Split cuts s on every unescaped sep. Empty columns are kept, so "a||c" has
// three columns. escape followed by sep or by another escape stands for that
// literal text; any other escape is kept as is. An empty escape disables escaping.
// An empty sep does not split: s comes back as the only column.
func Split(s, sep, escape string) []string {
	if sep == "" {
		return []string{s}
	}

	var (
		cols []string
		cur  strings.Builder
	)

	for i := 0; i < len(s); {
		rest := s[i:]

		switch {
		case escape != "" && strings.HasPrefix(rest, escape):
			after := rest[len(escape):]

			switch {
			case strings.HasPrefix(after, sep):
				cur.WriteString(sep)
				i += len(escape) + len(sep)
			case strings.HasPrefix(after, escape):
				cur.WriteString(escape)
				i += 2 * len(escape)
			default:
				cur.WriteString(escape)
				i += len(escape)
			}

		case strings.HasPrefix(rest, sep):
			cols = append(cols, cur.String())
			cur.Reset()
			i += len(sep)

		default:
			cur.WriteByte(s[i])
			i++
		}
	}

	return append(cols, cur.String())
}
