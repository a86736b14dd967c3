package criteria

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Column positions in the criteria worksheet. The label column carries item
// ordinals and N/A markers, the text column the prompt itself, and the name
// column doubles as the section header slot.
const (
	colLabel   = 0 // A
	colText    = 1 // B
	colScore1  = 2 // C
	colScore2  = 3 // D
	colSection = 4 // E
	colScore3  = 5 // F
	maxColumns = 11
)

// scoreKeywords mark rows that define scoring rather than name a section.
var scoreKeywords = []string{"score", "out of", "pass or fail"}

// connectorPrefixes are words that signal a wrapped line continuing the
// previous prompt even when the row carries its own numeric ordinal.
var connectorPrefixes = []string{
	"and ", "or ", "nor ", "but ", "so ", "yet ",
	"to ", "from ", "with ", "without ", "into ",
	"onto ", "including ", "excluding ",
}

var firstInteger = regexp.MustCompile(`(\d+)`)

// extractor is the row classifier state: the section and subsection rows
// currently being filled, plus the last item for continuation merging.
type extractor struct {
	sections   []*Section
	section    *Section
	subsection *Subsection
	lastItem   *Item
}

// ExtractSections classifies worksheet rows into the criteria tree. Rows
// that match no recognized shape (blank rows, anything before the first
// section header) are skipped; the pass never fails on a malformed row.
func ExtractSections(rows [][]any) []*Section {
	ex := &extractor{}
	for _, row := range rows {
		ex.consumeRow(row)
	}
	return ex.sections
}

func (ex *extractor) consumeRow(row []any) {
	label := Clean(cellAt(row, colLabel))
	text := Clean(cellAt(row, colText))
	scoreC := Clean(cellAt(row, colScore1))
	scoreD := Clean(cellAt(row, colScore2))
	sectionCell := Clean(cellAt(row, colSection))
	scoreF := Clean(cellAt(row, colScore3))

	// Section headers live in the section column with the label, text and
	// first score columns empty.
	if sectionCell != "" && label == "" && text == "" && scoreC == "" {
		ex.startSection(sectionCell)
		return
	}
	if ex.section == nil {
		return
	}

	// Subsection rows name a scoring group and describe its scale in the
	// remaining columns.
	info := make([]string, 0, maxColumns)
	for _, v := range []string{scoreC, scoreD, sectionCell, scoreF} {
		if v != "" {
			info = append(info, v)
		}
	}
	for i := colScore3 + 1; i < maxColumns; i++ {
		if v := Clean(cellAt(row, i)); v != "" {
			info = append(info, v)
		}
	}
	infoLine := strings.ToLower(strings.Join(info, " "))
	if label != "" && (strings.Contains(infoLine, "score") || strings.Contains(infoLine, "pass or fail")) {
		ex.startSubsection(label, row)
		return
	}
	if ex.subsection == nil {
		return
	}

	if text != "" {
		ex.consumeItemRow(label, text)
	}
}

func (ex *extractor) startSection(label string) {
	lowered := strings.ToLower(label)
	for _, kw := range scoreKeywords {
		// Scoring-definition text mis-aligned into the section column.
		if strings.Contains(lowered, kw) {
			return
		}
	}
	sec := &Section{Name: TitleCase(label), RawName: label}
	ex.sections = append(ex.sections, sec)
	ex.section = sec
	ex.subsection = nil
	ex.lastItem = nil
}

func (ex *extractor) startSubsection(name string, row []any) {
	sub := &Subsection{Name: name, MaxScore: maxScoreIn(row)}
	ex.section.Subsections = append(ex.section.Subsections, sub)
	ex.subsection = sub
	ex.lastItem = nil
}

// maxScoreIn scans the score-bearing columns for the largest integer, taking
// native numeric cells or the first embedded integer in text. Unparseable
// cells contribute nothing.
func maxScoreIn(row []any) *int {
	var best *int
	for i := colScore1; i < maxColumns; i++ {
		n, ok := integerIn(cellAt(row, i))
		if !ok {
			continue
		}
		if best == nil || n > *best {
			v := n
			best = &v
		}
	}
	return best
}

func integerIn(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		if v != 0 {
			return v, true
		}
	case int64:
		if v != 0 {
			return int(v), true
		}
	case float64:
		if v != 0 {
			return int(v), true
		}
	case string:
		if m := firstInteger.FindString(v); m != "" {
			if n, err := strconv.Atoi(m); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

func (ex *extractor) consumeItemRow(label, text string) {
	if ex.lastItem != nil && isContinuation(label, text) {
		joiner := " "
		if strings.HasSuffix(ex.lastItem.Text, "-") || strings.HasSuffix(ex.lastItem.Text, "—") {
			joiner = ""
		}
		ex.lastItem.Text = strings.TrimSpace(ex.lastItem.Text + joiner + text)
		return
	}

	key := Slug(ex.section.Name, ex.subsection.Name, fmt.Sprintf("%02d", len(ex.subsection.Items)+1))
	item := &Item{
		Key:     key,
		Text:    text,
		AllowNA: strings.Contains(strings.ToLower(label), "n/a"),
	}
	ex.subsection.Items = append(ex.subsection.Items, item)
	ex.lastItem = item
}

// isContinuation decides whether an item row continues the previous prompt.
// An empty label always continues; a numeric ordinal continues only when the
// text starts lower-case or with a connector word; any other label continues
// when the text starts lower-case.
func isContinuation(label, text string) bool {
	if label == "" {
		return true
	}
	if isOrdinalLabel(label) {
		if startsLower(text) {
			return true
		}
		lowered := strings.ToLower(strings.TrimLeft(text, " "))
		for _, prefix := range connectorPrefixes {
			if strings.HasPrefix(lowered, prefix) {
				return true
			}
		}
		return false
	}
	return startsLower(strings.TrimLeft(text, " "))
}

// isOrdinalLabel reports whether the label is an integer ordinal, allowing a
// single dot anywhere ("3", "3.", "1.2").
func isOrdinalLabel(label string) bool {
	stripped := strings.Replace(label, ".", "", 1)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}

func cellAt(row []any, i int) any {
	if i < 0 || i >= len(row) {
		return nil
	}
	return row[i]
}
