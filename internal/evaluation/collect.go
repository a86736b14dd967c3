package evaluation

// ComputeSectionSummary folds rating entries into per-section totals plus
// the overall score and possible sums. Entries without a positive numeric
// score still register their section (so it appears in the summary) but
// contribute nothing; each rated entry adds MaxItemScore to the possible
// totals. Section order is first-seen order of the entries.
func ComputeSectionSummary(entries []RatingEntry) ([]SectionTotal, float64, float64) {
	type bucket struct {
		score float64
		count int
	}
	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	totalScore := 0.0
	totalPossible := 0.0

	for _, entry := range entries {
		section := entry.Section
		if section == "" {
			section = "General"
		}
		b, ok := buckets[section]
		if !ok {
			b = &bucket{}
			buckets[section] = b
			order = append(order, section)
		}
		if entry.Score != nil && *entry.Score > 0 {
			b.score += *entry.Score
			b.count++
			totalScore += *entry.Score
			totalPossible += MaxItemScore
		}
	}

	totals := make([]SectionTotal, 0, len(order))
	for _, section := range order {
		b := buckets[section]
		possible := float64(b.count) * MaxItemScore
		percentage := 0.0
		if possible > 0 {
			percentage = b.score / possible
		}
		totals = append(totals, SectionTotal{
			Section:    section,
			Score:      b.score,
			Possible:   possible,
			Percentage: percentage,
		})
	}

	return totals, totalScore, totalPossible
}

// CollectRatings turns the submitted selections into rating entries with
// per-section and overall aggregates. The placeholder sentinel and empty
// selections count as unrated; Not Observed is a valid selection with no
// score. Selections must arrive in criteria-tree order, which fixes the
// entry order in the result.
func CollectRatings(selections []Selection, details map[string]Detail) Summary {
	counts := make(map[string]int, len(RatingValueMap))
	for label := range RatingValueMap {
		counts[label] = 0
	}

	entries := make([]RatingEntry, 0, len(selections))
	ratedCount := 0

	for _, sel := range selections {
		choice := sel.Choice
		if choice == NoSelectionSentinel {
			choice = ""
		}

		detail := details[sel.Key]
		var score *float64
		if choice != "" {
			if value, known := RatingValueMap[choice]; known {
				counts[choice]++
				if value != nil {
					v := *value
					score = &v
					ratedCount++
				}
			}
		}

		entries = append(entries, RatingEntry{
			Key:        sel.Key,
			Section:    detail.Section,
			Subsection: detail.Subsection,
			Prompt:     detail.Prompt,
			Selection:  choice,
			Score:      score,
		})
	}

	sectionTotals, totalScore, totalPossible := ComputeSectionSummary(entries)
	average := 0.0
	if totalPossible > 0 {
		average = totalScore / totalPossible
	}

	return Summary{
		Entries:       entries,
		Average:       average,
		RatedCount:    ratedCount,
		ScoreCounts:   counts,
		SectionTotals: sectionTotals,
		TotalScore:    totalScore,
		TotalPossible: totalPossible,
	}
}
