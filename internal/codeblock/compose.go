package codeblock

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// asSubordinateClause rewrites a top-level instruction message so it can be
// appended after "Furthermore, ": the first double line break collapses to a
// space and the first letter is lowercased.
func asSubordinateClause(msg string) string {
	msg = strings.Replace(msg, "\n\n", " ", 1)
	r, size := utf8.DecodeRuneInString(msg)
	if size == 0 || r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToLower(r)) + msg[size:]
}
