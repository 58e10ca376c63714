package pipeline

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// foldCase returns a caseless form of s for comparisons.
// Casers keep state, so each call builds its own.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

// NormalizeStatus upper-cases the first letter and lower-cases the rest:
// "OPEN" -> "Open", "re-open" -> "Re-open". Empty input becomes "Unknown".
func NormalizeStatus(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return "Unknown"
	}
	_, size := utf8.DecodeRuneInString(status)
	head := cases.Upper(language.Und).String(status[:size])
	tail := cases.Lower(language.Und).String(status[size:])
	return head + tail
}
