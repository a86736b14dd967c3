package evaluation

// RatingEntry is one evaluated item's outcome. Score is nil for unrated or
// explicitly Not Observed items.
type RatingEntry struct {
	Key        string   `json:"key"`
	Section    string   `json:"section"`
	Subsection string   `json:"subsection"`
	Prompt     string   `json:"prompt"`
	Selection  string   `json:"selection,omitempty"`
	Score      *float64 `json:"score"`
}

// SectionTotal aggregates the rated items of one section. Possible is the
// rated-item count times the per-item ceiling; Percentage is Score/Possible
// or 0 when nothing was rated.
type SectionTotal struct {
	Section    string  `json:"section"`
	Score      float64 `json:"score"`
	Possible   float64 `json:"possible"`
	Percentage float64 `json:"percentage"`
}

// Detail locates an item within the criteria tree for reporting.
type Detail struct {
	Section    string
	Subsection string
	Prompt     string
}

// Selection pairs an item key with the label the evaluator chose. Order
// follows the criteria tree so rating entries come out in form order.
type Selection struct {
	Key    string
	Choice string
}

// Summary is the aggregate produced from one set of selections.
type Summary struct {
	Entries       []RatingEntry  `json:"entries"`
	Average       float64        `json:"average"`
	RatedCount    int            `json:"rated_count"`
	ScoreCounts   map[string]int `json:"score_counts"`
	SectionTotals []SectionTotal `json:"section_totals"`
	TotalScore    float64        `json:"total_score"`
	TotalPossible float64        `json:"total_possible"`
}

// Comments are the four free-text evaluator comment fields.
type Comments struct {
	Strengths   string `json:"strengths"`
	Improvement string `json:"improvement"`
	Development string `json:"development"`
	Overall     string `json:"overall"`
}

// Record is a full evaluation as persisted and exported. Records are
// immutable once submitted; admins may only delete them.
type Record struct {
	ID               string         `json:"id,omitempty"`
	EvaluatorName    string         `json:"evaluator_name"`
	TrainerName      string         `json:"trainer_name"`
	TrainingDate     string         `json:"training_date"`
	ObservationDate  string         `json:"observation_date,omitempty"`
	TrainingLocation string         `json:"training_location,omitempty"`
	EvalType         string         `json:"eval_type,omitempty"`
	Recommendation   string         `json:"recommendation"`
	Ratings          []RatingEntry  `json:"ratings"`
	AverageScore     float64        `json:"average_score"`
	ScorePercentage  float64        `json:"score_percentage"`
	RatedItemCount   int            `json:"rated_item_count"`
	TotalScore       float64        `json:"total_score"`
	TotalPossible    float64        `json:"total_possible"`
	ScoreCounts      map[string]int `json:"score_counts"`
	SectionTotals    []SectionTotal `json:"section_totals"`
	Comments         Comments       `json:"comments"`
	SubmissionDate   string         `json:"submission_date"`
	CreatedAt        string         `json:"created_at,omitempty"`
}
