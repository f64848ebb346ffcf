package util

import (
	"html"
	"regexp"
	"strings"
)

// CleanText collapses all whitespace runs (including non-breaking
// spaces) to single spaces and trims the ends.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// ExtractField applies a single-capture-group pattern to text. No match
// returns the fallback verbatim; a match is entity-decoded and cleaned.
// It never fails, whatever the input looks like.
func ExtractField(re *regexp.Regexp, text, fallback string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return fallback
	}
	return CleanText(html.UnescapeString(m[1]))
}
