package criteria

import (
	"regexp"
	"strings"
)

// trailingParenthetical matches a parenthesized suffix such as
// "(Continued)" at the end of a section name.
var trailingParenthetical = regexp.MustCompile(`(?i)\s*\(.*?\)\s*$`)

// MergeContinuedSections coalesces sections that continue an earlier section
// under a suffixed heading, e.g. "PLATE WORK (Continued)" folds into
// "PLATE WORK". The first occurrence of a canonical name establishes the
// merged section; later occurrences contribute their subsections in order
// and append their raw label when it is not already recorded. First-seen
// order of canonical names is preserved.
func MergeContinuedSections(sections []*Section) []*Section {
	merged := make(map[string]*Section, len(sections))
	order := make([]string, 0, len(sections))

	for _, sec := range sections {
		canonical := strings.TrimSpace(trailingParenthetical.ReplaceAllString(sec.Name, ""))

		target, ok := merged[canonical]
		if !ok {
			target = &Section{Name: canonical, RawName: sec.RawName}
			merged[canonical] = target
			order = append(order, canonical)
		} else if !strings.Contains(target.RawName, sec.RawName) {
			target.RawName = target.RawName + ", " + sec.RawName
		}
		target.Subsections = append(target.Subsections, sec.Subsections...)
	}

	out := make([]*Section, 0, len(order))
	for _, name := range order {
		out = append(out, merged[name])
	}
	return out
}
