package associate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Matches reports whether ticketKey is referenced by message. The key must
// occur case-insensitively with no word character (letter, digit or
// underscore) immediately before it and no digit immediately after it, so
// searching for PROJ-12 matches "PROJ-12: fix" and "fixes PROJ-12a" but not
// "PROJ-123" or "xPROJ-12". Go's regexp has no lookbehind/lookahead, so the
// boundaries are checked by hand.
func Matches(ticketKey, message string) bool {
	if ticketKey == "" {
		return false
	}
	key := strings.ToLower(ticketKey)
	msg := strings.ToLower(message)

	for from := 0; ; {
		i := strings.Index(msg[from:], key)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(key)
		if !wordBefore(msg, start) && !digitAfter(msg, end) {
			return true
		}
		from = start + 1
	}
}

func wordBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isWord(r)
}

func digitAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return unicode.IsDigit(r)
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
