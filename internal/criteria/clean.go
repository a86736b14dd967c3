package criteria

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// cellReplacer substitutes typographic characters the workbook tends to
// carry (smart quotes, dashes, stray replacement characters) with their
// plain ASCII equivalents. Bullets are kept as-is.
var cellReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"�", "'", // replacement character
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Clean normalizes a raw cell value into display text. Numeric cells render
// as their canonical decimal string (whole floats lose the trailing ".0"),
// nil yields an empty string, and text is NFKC-normalized with punctuation
// substituted and whitespace collapsed.
func Clean(value any) string {
	var text string
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		text = v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		text = fmt.Sprint(v)
	}

	text = norm.NFKC.String(text)
	text = cellReplacer.Replace(text)
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// TitleCase capitalizes the first letter of every word and lowercases the
// rest, the way section headers are displayed ("PLATE WORK" -> "Plate Work").
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
