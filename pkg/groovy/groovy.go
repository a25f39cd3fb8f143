// Package groovy renders Go values as Groovy source literals suitable for
// single-quoted interpolation inside a pipeline parameters block.
package groovy

import (
	"fmt"
	"strconv"
	"strings"
)

// escaper performs all five substitutions in a single pass so escape
// sequences inserted for one character are never re-escaped by another.
// Backslash is listed first to keep the substitution order explicit.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Escape transforms a raw string for safe use inside a single-quoted Groovy
// string literal.
func Escape(value string) string {
	return escaper.Replace(value)
}

// Unescape reverses Escape: each escape sequence maps back to the character
// it stands for. Escape followed by Unescape reconstructs the input exactly.
// Unrecognised sequences are preserved verbatim.
func Unescape(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c != '\\' || i+1 == len(value) {
			b.WriteByte(c)
			continue
		}
		switch value[i+1] {
		case '\\':
			b.WriteByte('\\')
		case '\'':
			b.WriteByte('\'')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(c)
			continue
		}
		i++
	}
	return b.String()
}

// Quote escapes the value and wraps it in single quotes.
func Quote(value string) string {
	return "'" + Escape(value) + "'"
}

// Literal renders a value as Groovy source text. Strings are quoted and
// escaped, booleans and numbers stay bare, string slices become bracketed
// lists with each element quoted individually. Anything else falls back to
// its default textual representation, unquoted and best-effort.
func Literal(value any) string {
	switch v := value.(type) {
	case string:
		return Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case []string:
		return List(v)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(v)
	default:
		return fmt.Sprint(v)
	}
}

// List renders an ordered string sequence as a Groovy list literal,
// preserving element order.
func List(values []string) string {
	var b strings.Builder
	b.WriteString("[")
	for i, value := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Quote(value))
	}
	b.WriteString("]")
	return b.String()
}
