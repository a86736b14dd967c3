// Package criteria parses the evaluation criteria workbook into the
// section/subsection/item tree that drives the rating form.
package criteria

// Section is a high-level evaluation category (e.g. "Plate Work").
type Section struct {
	// Name is the title-cased display name. Unique after merging.
	Name string `json:"name"`
	// RawName keeps the original spreadsheet label; continued sections
	// accumulate their labels here, comma separated.
	RawName     string        `json:"raw_name"`
	Subsections []*Subsection `json:"subsections"`
}

// Subsection is a scoring group within a section. MaxScore is the point
// ceiling taken from the workbook's score row, when one was found.
type Subsection struct {
	Name     string  `json:"name"`
	MaxScore *int    `json:"max_score"`
	Items    []*Item `json:"items"`
}

// Item is a single evaluation prompt.
type Item struct {
	// Key is a stable slug unique within the tree, derived from the
	// section name, subsection name and ordinal position.
	Key  string `json:"key"`
	Text string `json:"text"`
	// AllowNA reports whether a "Not Observed" selection is valid.
	AllowNA bool `json:"allow_na"`
}
