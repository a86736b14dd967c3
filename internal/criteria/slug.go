package criteria

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumRun = regexp.MustCompile(`[^a-z0-9]+`)

// asciiFold decomposes accented characters and strips the combining marks,
// leaving plain ASCII where possible.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Slug derives a stable identifier from hierarchical name parts. Empty parts
// are skipped, the rest are joined with underscores, ASCII-folded,
// lower-cased and reduced to single-underscore-separated alphanumeric runs.
// Callers always include the item's ordinal position as the final part, which
// keeps keys unique within a tree. Returns "criterion" if nothing survives.
func Slug(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	joined := strings.Join(kept, "_")

	folded, _, err := transform.String(asciiFold, joined)
	if err != nil {
		folded = joined
	}
	var ascii strings.Builder
	ascii.Grow(len(folded))
	for _, r := range folded {
		if r < 128 {
			ascii.WriteRune(r)
		}
	}

	slug := strings.ToLower(ascii.String())
	slug = nonAlphanumRun.ReplaceAllString(slug, "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return "criterion"
	}
	return slug
}
