// Package export renders evaluation records as PDF and Word reports.
package export

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Filename builds the download filename for a report. The name is reduced
// to characters safe for a filename; an empty result falls back to
// "Evaluation".
func Filename(name, ext string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	safe := strings.TrimSpace(b.String())
	if safe == "" {
		safe = "Evaluation"
	}
	return fmt.Sprintf("HTASO_Evaluation_%s_%s.%s", safe, time.Now().Format("20060102"), ext)
}
