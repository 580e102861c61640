package dates

import (
	"regexp"
	"strconv"
	"strings"
)

// tokenPattern matches a normalized three-numeric-component date token.
var tokenPattern = regexp.MustCompile(`^\s*(\d{1,4})/(\d{1,2})/(\d{1,4})\s*$`)

// NormalizeToken canonicalizes a free-form date string: strips surrounding
// whitespace and quotes, keeps only the first whitespace-delimited word
// (drops an adjoined time-of-day like "18:30:00"), strips trailing
// punctuation, and collapses the '.' and '-' separators to '/'.
// Normalization is idempotent.
func NormalizeToken(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)
	if fields := strings.Fields(s); len(fields) > 0 {
		s = fields[0]
	} else {
		s = ""
	}
	s = strings.TrimRight(s, ",;)]")
	s = strings.ReplaceAll(s, ".", "/")
	s = strings.ReplaceAll(s, "-", "/")
	return s
}

// splitComponents extracts the three numeric components of a normalized
// token. ok is false for tokens that do not match the pattern; such tokens
// are excluded from inference but are not individually fatal.
func splitComponents(token string) (a, b, c int, ok bool) {
	m := tokenPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, 0, 0, false
	}
	a, _ = strconv.Atoi(m[1])
	b, _ = strconv.Atoi(m[2])
	c, _ = strconv.Atoi(m[3])
	return a, b, c, true
}
