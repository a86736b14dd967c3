package db

import (
	"time"

	"github.com/google/uuid"
)

// EvaluationSummary is the dashboard listing row for one evaluation.
type EvaluationSummary struct {
	ID             uuid.UUID `json:"id"`
	Trainer        string    `json:"trainer"`
	Evaluator      string    `json:"evaluator"`
	TrainingDate   string    `json:"training_date"`
	SubmissionDate string    `json:"submission_date"`
	Average        float64   `json:"average"`
	TotalScore     float64   `json:"total_score"`
	TotalPossible  float64   `json:"total_possible"`
	Recommendation string    `json:"recommendation"`
	CreatedAt      time.Time `json:"created_at"`
}

// SearchFilter narrows an evaluation search. Zero values match everything;
// the evaluator name matches partially, the trainer name exactly, and the
// date bounds compare against the training date.
type SearchFilter struct {
	EvaluatorName string
	TrainerName   string
	StartDate     string
	EndDate       string
}

// Stats are the dashboard aggregate counts.
type Stats struct {
	TotalEvaluations int     `json:"total_evaluations"`
	TotalTrainers    int     `json:"total_trainers"`
	TotalEvaluators  int     `json:"total_evaluators"`
	AverageScore     float64 `json:"average_score"`
}
