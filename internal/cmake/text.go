package cmake

import "strings"

// Escape inserts a backslash in front of every byte of value that appears in
// chars.
func Escape(chars, value string) string {
	if !strings.ContainsAny(value, chars) {
		return value
	}
	var sb strings.Builder
	sb.Grow(len(value) + 8)
	for i := 0; i < len(value); i++ {
		if strings.IndexByte(chars, value[i]) >= 0 {
			sb.WriteByte('\\')
		}
		sb.WriteByte(value[i])
	}
	return sb.String()
}

// EscapeString escapes value for use inside a quoted argument.
func EscapeString(value string) string {
	return Escape(`\"`, value)
}

// EscapePath escapes the backslashes of a filesystem path.
func EscapePath(value string) string {
	return Escape(`\`, value)
}

// SanitizeIdentifier replaces every byte that is not an ASCII letter or digit
// with an underscore, so the result can be used in a CMake variable name.
// Multi-byte characters become one underscore per byte.
func SanitizeIdentifier(s string) string {
	b := []byte(s)
	for i, c := range b {
		if !isAlnum(c) {
			b[i] = '_'
		}
	}
	return string(b)
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
