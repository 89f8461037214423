// Package sanitize cleans agent-entered free text before it is stored or
// placed into a generation prompt.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

var (
	// Only spans opening like an element, end tag, comment or doctype count as
	// markup, so comparisons such as "< 2M" survive.
	tagPattern         = regexp.MustCompile(`<[a-zA-Z/!][^>]*>`)
	inlineSpacePattern = regexp.MustCompile(`[ \t]+`)
	blankLinesPattern  = regexp.MustCompile(`\n{3,}`)
)

// StripHTML removes markup, decodes entities and strips again so encoded
// tags do not survive.
func StripHTML(s string) string {
	out := tagPattern.ReplaceAllString(s, "")
	out = html.UnescapeString(out)
	out = tagPattern.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// Text strips markup and squeezes runs of spaces. Line breaks are kept, but
// never more than one blank line in a row.
func Text(s string) string {
	out := StripHTML(strings.ReplaceAll(s, "\r\n", "\n"))
	out = inlineSpacePattern.ReplaceAllString(out, " ")
	out = blankLinesPattern.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// TextPtr applies Text to an optional value.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := Text(*s)
	return &out
}
