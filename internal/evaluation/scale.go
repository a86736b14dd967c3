// Package evaluation holds the rating scale, scoring aggregation and
// record-normalization logic for umpire training evaluations.
package evaluation

// The HTASO scale stores scores inverted so that higher is better: the
// label "1 - Outstanding" is worth 5 points and "5 - Unsatisfactory" 1.
type ratingBand struct {
	Label string
	Score float64
}

// RatingScale lists the graded labels in display order with their inverted
// score values.
var RatingScale = []ratingBand{
	{"1 - Outstanding", 5},
	{"2 - Above Standard", 4},
	{"3 - Meets Standard", 3},
	{"4 - Below Standard", 2},
	{"5 - Unsatisfactory", 1},
}

// NotObservedLabel marks an item the evaluator could not rate. It carries no
// numeric score.
const NotObservedLabel = "Not Observed"

// NoSelectionSentinel is the placeholder value submitted for unrated items.
const NoSelectionSentinel = "Select result"

// MaxItemScore is the fixed per-item ceiling every rated item contributes
// to its section's possible total.
const MaxItemScore = 5.0

// RatingOptions are the graded labels in display order, without the
// Not Observed option.
var RatingOptions = func() []string {
	opts := make([]string, len(RatingScale))
	for i, band := range RatingScale {
		opts[i] = band.Label
	}
	return opts
}()

// RatingValueMap maps every valid selection label to its score. The
// Not Observed label maps to nil: a known selection with no score.
var RatingValueMap = func() map[string]*float64 {
	m := make(map[string]*float64, len(RatingScale)+1)
	for _, band := range RatingScale {
		score := band.Score
		m[band.Label] = &score
	}
	m[NotObservedLabel] = nil
	return m
}()

// NoRecommendationSentinel is the placeholder value submitted when no
// overall recommendation was chosen.
const NoRecommendationSentinel = "Select recommendation"

// RecommendationOptions are the four allowed overall recommendations.
var RecommendationOptions = []string{
	"Approved for Independent Evaluation",
	"Approved with Additional Training Required",
	"Requires Further Training Before Approval",
	"Not Approved - Significant Concerns",
}

// RecommendationColors gives each recommendation its dashboard badge color.
var RecommendationColors = map[string]string{
	"Approved for Independent Evaluation":        "#2A9D8F",
	"Approved with Additional Training Required": "#F4A261",
	"Requires Further Training Before Approval":  "#F97316",
	"Not Approved - Significant Concerns":        "#E76F51",
}
