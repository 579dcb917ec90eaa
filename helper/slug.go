package helper

import (
	"strings"
	"unicode"
)

// Slugify lowercases s and reduces it to a URL-safe hyphenated form.
// Non-ASCII letters are dropped rather than transliterated.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ', r == '-', r == '_', r == '/':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// Underscore converts a StructField name like "RejectionReason" to
// "rejection_reason" for validation error keys.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
