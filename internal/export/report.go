package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/htaso/evaltracker/internal/evaluation"
)

const reportTitle = "HTASO Umpire Evaluation Report"

// detailRows builds the label/value rows of the report details table.
// Blank fields print as "N/A". The HTASO rows are appended when anything
// was rated.
func detailRows(rec *evaluation.Record) [][2]string {
	rows := [][2]string{
		{"Evaluator Name", orNA(rec.EvaluatorName)},
		{"Trainer Name", orNA(rec.TrainerName)},
		{"Training Date", orNA(rec.TrainingDate)},
		{"Observation Date", orNA(rec.ObservationDate)},
		{"Location", orNA(rec.TrainingLocation)},
		{"Type of Evaluation", orNA(rec.EvalType)},
		{"Submission Date", orNA(rec.SubmissionDate)},
		{"Rated Items", strconv.Itoa(rec.RatedItemCount)},
	}

	if avg, rank, ok := evaluation.HTASOAverage(rec.TotalScore, rec.TotalPossible); ok {
		rows = append(rows,
			[2]string{"HTASO Average", fmt.Sprintf("%.2f", avg)},
			[2]string{"Rank", strconv.Itoa(rank)},
			[2]string{"Percentage", fmt.Sprintf("%.0f%%", rec.TotalScore/rec.TotalPossible*100)},
		)
	} else {
		rows = append(rows, [2]string{"HTASO Average", "N/A"})
	}
	return rows
}

// sectionScoreRow renders one section totals row. Sections with nothing
// rated show placeholder dashes.
func sectionScoreRow(total evaluation.SectionTotal) [4]string {
	section := total.Section
	if section == "" {
		section = "General"
	}
	if avg, rank, ok := evaluation.HTASOAverage(total.Score, total.Possible); ok {
		return [4]string{
			section,
			fmt.Sprintf("%.2f", avg),
			strconv.Itoa(rank),
			fmt.Sprintf("%.0f%%", total.Percentage*100),
		}
	}
	return [4]string{section, "-", "-", "N/A"}
}

// overallSummary is the one-line score summary under the section table.
func overallSummary(rec *evaluation.Record) string {
	if avg, rank, ok := evaluation.HTASOAverage(rec.TotalScore, rec.TotalPossible); ok {
		return fmt.Sprintf("Overall HTASO Average: %.2f | Rank: %d", avg, rank)
	}
	return "Overall Score: N/A"
}

type ratingGroup struct {
	Section     string
	Subsections []ratingSubgroup
}

type ratingSubgroup struct {
	Subsection string
	Items      []evaluation.RatingEntry
}

// groupRatings nests rating entries by section then subsection in first
// occurrence order. Missing names fall back to "General" and "Criteria".
func groupRatings(entries []evaluation.RatingEntry) []ratingGroup {
	groups := make([]ratingGroup, 0)
	index := make(map[string]int)
	for _, entry := range entries {
		section := entry.Section
		if section == "" {
			section = "General"
		}
		subsection := entry.Subsection
		if subsection == "" {
			subsection = "Criteria"
		}

		gi, ok := index[section]
		if !ok {
			gi = len(groups)
			index[section] = gi
			groups = append(groups, ratingGroup{Section: section})
		}
		g := &groups[gi]

		si := -1
		for i := range g.Subsections {
			if g.Subsections[i].Subsection == subsection {
				si = i
				break
			}
		}
		if si < 0 {
			si = len(g.Subsections)
			g.Subsections = append(g.Subsections, ratingSubgroup{Subsection: subsection})
		}
		g.Subsections[si].Items = append(g.Subsections[si].Items, entry)
	}
	return groups
}

// ratingLine is the bullet text for one rated item.
func ratingLine(entry evaluation.RatingEntry) string {
	selection := entry.Selection
	if selection == "" {
		selection = "Not Rated"
	}
	return fmt.Sprintf("%s (%s)", entry.Prompt, selection)
}

// commentSections pairs each comment heading with its text.
func commentSections(c evaluation.Comments) [][2]string {
	return [][2]string{
		{"Strengths Observed", c.Strengths},
		{"Areas for Improvement", c.Improvement},
		{"Development Recommendations", c.Development},
		{"Overall Assessment Comments", c.Overall},
	}
}

func recommendationText(rec *evaluation.Record) string {
	if rec.Recommendation == "" || rec.Recommendation == evaluation.NoRecommendationSentinel {
		return "Not Selected"
	}
	return rec.Recommendation
}

func preparedOn() string {
	return "Prepared on " + time.Now().Format("January 2, 2006")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
