package evaluation

import "time"

// displayLayouts are the accepted stored date formats, tried in order.
var displayLayouts = []string{
	"01/02/2006 03:04 PM",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// FormatDateTime reformats a stored date/time string as MM/DD/YYYY, with
// the 12-hour time appended when includeTime is set. Empty input renders as
// "N/A"; input matching none of the known layouts passes through unchanged.
func FormatDateTime(raw string, includeTime bool) string {
	if raw == "" {
		return "N/A"
	}
	for _, layout := range displayLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if includeTime {
			return t.Format("01/02/2006 03:04 PM")
		}
		return t.Format("01/02/2006")
	}
	return raw
}
