package evaluation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/htaso/evaltracker/internal/criteria"
)

// legacyScaleThreshold splits current 0-1 averages from legacy 0-5 ones. No
// current record can average above 1, and legacy records below 1.5 would
// have been failing scores nobody stored.
const legacyScaleThreshold = 1.5

// CoerceRatings resolves the two historical shapes of the ratings field:
// the current list of entry objects and the legacy map of key to raw value.
// Anything else collapses to an empty list. Legacy map entries keep their
// stored value as the score verbatim; the old schema predates the inverted
// scale, and the raw numbers are preserved rather than reinterpreted.
func CoerceRatings(raw any) []RatingEntry {
	switch v := raw.(type) {
	case []RatingEntry:
		return v
	case []any:
		entries := make([]RatingEntry, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			entries = append(entries, entryFromMap(m))
		}
		return entries
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		entries := make([]RatingEntry, 0, len(keys))
		for _, key := range keys {
			entries = append(entries, legacyEntry(key, v[key]))
		}
		return entries
	default:
		return []RatingEntry{}
	}
}

// legacyEntry converts one legacy dict rating into the current entry shape.
func legacyEntry(key string, value any) RatingEntry {
	entry := RatingEntry{
		Key:        key,
		Section:    "Legacy",
		Subsection: "Criteria",
		Prompt:     criteria.TitleCase(strings.ReplaceAll(key, "_", " ")),
	}
	if score, ok := toFloat(value); ok {
		entry.Selection = strconv.FormatFloat(score, 'f', -1, 64) + "/5"
		entry.Score = &score
	} else if s, ok := value.(string); ok {
		entry.Selection = s
	}
	return entry
}

// entryFromMap rebuilds a RatingEntry from decoded JSON, coercing string
// scores to numbers and dropping anything unparseable.
func entryFromMap(m map[string]any) RatingEntry {
	entry := RatingEntry{
		Key:        asString(m["key"]),
		Section:    asString(m["section"]),
		Subsection: asString(m["subsection"]),
		Prompt:     asString(m["prompt"]),
		Selection:  asString(m["selection"]),
	}
	if score, ok := toFloat(m["score"]); ok {
		entry.Score = &score
	}
	return entry
}

// Renormalize recomputes every derived field of a record from its ratings.
// Stored totals are never trusted: section totals, overall totals and the
// average are rebuilt through the same aggregation the collector uses. The
// legacy 0-5 average heuristic only survives when there are no ratings to
// recompute from.
func Renormalize(rec *Record) {
	if rec.Ratings == nil {
		rec.Ratings = []RatingEntry{}
	}

	if rec.AverageScore > legacyScaleThreshold {
		rec.AverageScore = rec.AverageScore / 5
	}

	sectionTotals, totalScore, totalPossible := ComputeSectionSummary(rec.Ratings)
	rec.SectionTotals = sectionTotals
	rec.TotalScore = totalScore
	rec.TotalPossible = totalPossible

	if totalPossible > 0 {
		rec.AverageScore = totalScore / totalPossible
	}
	rec.ScorePercentage = rec.AverageScore * 100

	ratedItems := 0
	for _, st := range sectionTotals {
		ratedItems += int(st.Possible / MaxItemScore)
	}
	rec.RatedItemCount = ratedItems

	if rec.ScoreCounts == nil {
		rec.ScoreCounts = make(map[string]int, len(RatingValueMap))
	}
	for label := range RatingValueMap {
		if _, present := rec.ScoreCounts[label]; !present {
			rec.ScoreCounts[label] = 0
		}
	}
}

// NormalizeRecord upgrades a raw decoded record of either schema generation
// to a current-schema Record. Fields of unexpected type coerce to safe
// defaults; the function is total over any JSON object.
func NormalizeRecord(raw map[string]any) *Record {
	rec := &Record{
		ID:               asString(raw["id"]),
		EvaluatorName:    asString(raw["evaluator_name"]),
		TrainerName:      asString(raw["trainer_name"]),
		TrainingDate:     asString(raw["training_date"]),
		ObservationDate:  asString(raw["observation_date"]),
		TrainingLocation: asString(raw["training_location"]),
		EvalType:         asString(raw["eval_type"]),
		Recommendation:   asString(raw["recommendation"]),
		Ratings:          CoerceRatings(raw["ratings"]),
		SubmissionDate:   asString(raw["submission_date"]),
		CreatedAt:        asString(raw["created_at"]),
	}

	if avg, ok := toFloat(raw["average_score"]); ok {
		rec.AverageScore = avg
	}

	if counts, ok := raw["score_counts"].(map[string]any); ok {
		rec.ScoreCounts = make(map[string]int, len(counts))
		for label, count := range counts {
			if n, ok := toFloat(count); ok {
				rec.ScoreCounts[label] = int(n)
			}
		}
	}

	if comments, ok := raw["comments"].(map[string]any); ok {
		rec.Comments = Comments{
			Strengths:   asString(comments["strengths"]),
			Improvement: asString(comments["improvement"]),
			Development: asString(comments["development"]),
			Overall:     asString(comments["overall"]),
		}
	}

	Renormalize(rec)
	return rec
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
