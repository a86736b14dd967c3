package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(v float64) *float64 { return &v }

func TestCollectRatings_ScoresInvertedScale(t *testing.T) {
	details := map[string]Detail{
		"plate_work_stance_01": {Section: "Plate Work", Subsection: "Stance", Prompt: "Maintains proper stance"},
		"plate_work_stance_02": {Section: "Plate Work", Subsection: "Stance", Prompt: "Signals clearly"},
	}
	summary := CollectRatings([]Selection{
		{Key: "plate_work_stance_01", Choice: "1 - Outstanding"},
		{Key: "plate_work_stance_02", Choice: "5 - Unsatisfactory"},
	}, details)

	require.Len(t, summary.Entries, 2)
	require.NotNil(t, summary.Entries[0].Score)
	assert.Equal(t, 5.0, *summary.Entries[0].Score)
	require.NotNil(t, summary.Entries[1].Score)
	assert.Equal(t, 1.0, *summary.Entries[1].Score)

	assert.Equal(t, 6.0, summary.TotalScore)
	assert.Equal(t, 10.0, summary.TotalPossible)
	assert.InDelta(t, 0.6, summary.Average, 1e-9)
	assert.Equal(t, 2, summary.RatedCount)
}

func TestCollectRatings_SentinelAndEmptyAreUnrated(t *testing.T) {
	summary := CollectRatings([]Selection{
		{Key: "a", Choice: NoSelectionSentinel},
		{Key: "b", Choice: ""},
	}, map[string]Detail{})

	assert.Equal(t, 0, summary.RatedCount)
	assert.Equal(t, 0.0, summary.TotalPossible)
	assert.Equal(t, 0.0, summary.Average)
	assert.Empty(t, summary.Entries[0].Selection)
	assert.Nil(t, summary.Entries[0].Score)
}

func TestCollectRatings_NotObservedCountsWithoutScore(t *testing.T) {
	summary := CollectRatings([]Selection{
		{Key: "a", Choice: NotObservedLabel},
	}, map[string]Detail{"a": {Section: "Plate Work"}})

	assert.Equal(t, 0, summary.RatedCount)
	assert.Equal(t, 1, summary.ScoreCounts[NotObservedLabel])
	assert.Nil(t, summary.Entries[0].Score)
	assert.Equal(t, NotObservedLabel, summary.Entries[0].Selection)

	// The section still appears in the summary with nothing rated.
	require.Len(t, summary.SectionTotals, 1)
	assert.Equal(t, 0.0, summary.SectionTotals[0].Possible)
	assert.Equal(t, 0.0, summary.SectionTotals[0].Percentage)
}

func TestCollectRatings_UnknownLabelIgnored(t *testing.T) {
	summary := CollectRatings([]Selection{
		{Key: "a", Choice: "6 - Stellar"},
	}, map[string]Detail{})

	assert.Equal(t, 0, summary.RatedCount)
	assert.NotContains(t, summary.ScoreCounts, "6 - Stellar")
	assert.Nil(t, summary.Entries[0].Score)
}

func TestCollectRatings_ScoreCountsCoverAllLabels(t *testing.T) {
	summary := CollectRatings([]Selection{
		{Key: "a", Choice: "3 - Meets Standard"},
		{Key: "b", Choice: "3 - Meets Standard"},
	}, map[string]Detail{})

	assert.Equal(t, 2, summary.ScoreCounts["3 - Meets Standard"])
	for _, label := range RatingOptions {
		assert.Contains(t, summary.ScoreCounts, label)
	}
	assert.Contains(t, summary.ScoreCounts, NotObservedLabel)
}

func TestComputeSectionSummary_GroupsBySectionInOrder(t *testing.T) {
	totals, totalScore, totalPossible := ComputeSectionSummary([]RatingEntry{
		{Section: "Plate Work", Score: score(5)},
		{Section: "Base Work", Score: score(3)},
		{Section: "Plate Work", Score: score(4)},
	})

	require.Len(t, totals, 2)
	assert.Equal(t, "Plate Work", totals[0].Section)
	assert.Equal(t, 9.0, totals[0].Score)
	assert.Equal(t, 10.0, totals[0].Possible)
	assert.InDelta(t, 0.9, totals[0].Percentage, 1e-9)
	assert.Equal(t, "Base Work", totals[1].Section)

	assert.Equal(t, 12.0, totalScore)
	assert.Equal(t, 15.0, totalPossible)
}

func TestComputeSectionSummary_EmptySectionDefaultsToGeneral(t *testing.T) {
	totals, _, _ := ComputeSectionSummary([]RatingEntry{
		{Section: "", Score: score(4)},
	})

	require.Len(t, totals, 1)
	assert.Equal(t, "General", totals[0].Section)
}

func TestComputeSectionSummary_PossibleInvariant(t *testing.T) {
	entries := []RatingEntry{
		{Section: "A", Score: score(5)},
		{Section: "A", Score: score(2)},
		{Section: "B", Score: nil},
		{Section: "B", Score: score(0)}, // zero scores never count as rated
	}
	_, _, totalPossible := ComputeSectionSummary(entries)

	rated := 0
	for _, e := range entries {
		if e.Score != nil && *e.Score > 0 {
			rated++
		}
	}
	assert.Equal(t, float64(rated)*MaxItemScore, totalPossible)
}

func TestCollectRatings_SectionTotalsMatchSharedAggregation(t *testing.T) {
	details := map[string]Detail{
		"a": {Section: "Plate Work"},
		"b": {Section: "Base Work"},
		"c": {Section: "Plate Work"},
	}
	summary := CollectRatings([]Selection{
		{Key: "a", Choice: "2 - Above Standard"},
		{Key: "b", Choice: NotObservedLabel},
		{Key: "c", Choice: "4 - Below Standard"},
	}, details)

	// Feeding the collector's entries back through the aggregator must
	// reproduce its own section totals exactly.
	recomputed, totalScore, totalPossible := ComputeSectionSummary(summary.Entries)
	assert.Equal(t, summary.SectionTotals, recomputed)
	assert.Equal(t, summary.TotalScore, totalScore)
	assert.Equal(t, summary.TotalPossible, totalPossible)
}

func TestHTASOAverage(t *testing.T) {
	avg, rank, ok := HTASOAverage(40, 50)
	require.True(t, ok)
	assert.InDelta(t, 2.0, avg, 1e-9)
	assert.Equal(t, 2, rank)

	_, _, ok = HTASOAverage(0, 0)
	assert.False(t, ok)
}

func TestHTASOAverage_HalfwayRanksRoundToEven(t *testing.T) {
	avg, rank, ok := HTASOAverage(35, 50)
	require.True(t, ok)
	assert.InDelta(t, 2.5, avg, 1e-9)
	assert.Equal(t, 2, rank)

	avg, rank, ok = HTASOAverage(25, 50)
	require.True(t, ok)
	assert.InDelta(t, 3.5, avg, 1e-9)
	assert.Equal(t, 4, rank)
}
