package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/htaso/evaltracker/internal/evaluation"
)

// SaveEvaluation stores a submitted evaluation and returns its ID. Records
// are insert-only; there is no update path.
func (db *DB) SaveEvaluation(ctx context.Context, rec *evaluation.Record) (uuid.UUID, error) {
	ratingsJSON, err := json.Marshal(rec.Ratings)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal ratings: %w", err)
	}
	countsJSON, err := json.Marshal(rec.ScoreCounts)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal score counts: %w", err)
	}
	sectionsJSON, err := json.Marshal(rec.SectionTotals)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal section totals: %w", err)
	}
	commentsJSON, err := json.Marshal(rec.Comments)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal comments: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO evaluations (
		     evaluator_name, trainer_name, training_date, observation_date,
		     training_location, eval_type, recommendation, ratings,
		     average_score, score_percentage, rated_item_count, total_score,
		     total_possible, score_counts, section_totals, comments,
		     submission_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		 RETURNING id`,
		rec.EvaluatorName, rec.TrainerName, rec.TrainingDate, rec.ObservationDate,
		rec.TrainingLocation, rec.EvalType, rec.Recommendation, ratingsJSON,
		rec.AverageScore, rec.ScorePercentage, rec.RatedItemCount, rec.TotalScore,
		rec.TotalPossible, countsJSON, sectionsJSON, commentsJSON,
		rec.SubmissionDate,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save evaluation: %w", err)
	}
	return id, nil
}

// ListEvaluations returns dashboard summaries, newest first. A non-empty
// trainer filters to that trainer's evaluations.
func (db *DB) ListEvaluations(ctx context.Context, trainer string) ([]EvaluationSummary, error) {
	query := `SELECT id, trainer_name, evaluator_name, training_date, submission_date,
	                 average_score, total_score, total_possible, recommendation, created_at
	          FROM evaluations`
	args := []any{}
	if trainer != "" && trainer != "all" {
		query += ` WHERE trainer_name = $1`
		args = append(args, trainer)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	defer rows.Close()

	summaries := make([]EvaluationSummary, 0)
	for rows.Next() {
		var s EvaluationSummary
		if err := rows.Scan(&s.ID, &s.Trainer, &s.Evaluator, &s.TrainingDate,
			&s.SubmissionDate, &s.Average, &s.TotalScore, &s.TotalPossible,
			&s.Recommendation, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetEvaluation loads one evaluation and normalizes it to the current
// schema. Records written before the list-based ratings schema are upgraded
// on read; derived totals are always recomputed. Returns nil when the ID is
// unknown.
func (db *DB) GetEvaluation(ctx context.Context, id uuid.UUID) (*evaluation.Record, error) {
	var (
		rec          evaluation.Record
		ratingsJSON  []byte
		countsJSON   []byte
		commentsJSON []byte
		createdAt    time.Time
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, evaluator_name, trainer_name, training_date, observation_date,
		        training_location, eval_type, recommendation, ratings,
		        average_score, score_counts, comments, submission_date, created_at
		 FROM evaluations WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.EvaluatorName, &rec.TrainerName, &rec.TrainingDate,
		&rec.ObservationDate, &rec.TrainingLocation, &rec.EvalType,
		&rec.Recommendation, &ratingsJSON, &rec.AverageScore, &countsJSON,
		&commentsJSON, &rec.SubmissionDate, &createdAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	rec.CreatedAt = createdAt.Format(time.RFC3339)

	// Decode ratings through the variant adapter so legacy dict-shaped
	// payloads still come out as entry lists.
	var rawRatings any
	if len(ratingsJSON) > 0 {
		_ = json.Unmarshal(ratingsJSON, &rawRatings)
	}
	rec.Ratings = evaluation.CoerceRatings(rawRatings)

	if len(countsJSON) > 0 {
		_ = json.Unmarshal(countsJSON, &rec.ScoreCounts)
	}
	if len(commentsJSON) > 0 {
		_ = json.Unmarshal(commentsJSON, &rec.Comments)
	}

	evaluation.Renormalize(&rec)
	return &rec, nil
}

// SearchEvaluations returns summaries matching the filter, newest first.
func (db *DB) SearchEvaluations(ctx context.Context, filter SearchFilter) ([]EvaluationSummary, error) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if filter.EvaluatorName != "" {
		args = append(args, "%"+filter.EvaluatorName+"%")
		conditions = append(conditions, fmt.Sprintf("evaluator_name ILIKE $%d", len(args)))
	}
	if filter.TrainerName != "" && filter.TrainerName != "all" {
		args = append(args, filter.TrainerName)
		conditions = append(conditions, fmt.Sprintf("trainer_name = $%d", len(args)))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("training_date >= $%d", len(args)))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("training_date <= $%d", len(args)))
	}

	query := `SELECT id, trainer_name, evaluator_name, training_date, submission_date,
	                 average_score, total_score, total_possible, recommendation, created_at
	          FROM evaluations`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search evaluations: %w", err)
	}
	defer rows.Close()

	summaries := make([]EvaluationSummary, 0)
	for rows.Next() {
		var s EvaluationSummary
		if err := rows.Scan(&s.ID, &s.Trainer, &s.Evaluator, &s.TrainingDate,
			&s.SubmissionDate, &s.Average, &s.TotalScore, &s.TotalPossible,
			&s.Recommendation, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// DeleteEvaluation removes an evaluation. Returns false when nothing was
// deleted.
func (db *DB) DeleteEvaluation(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM evaluations WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete evaluation: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListTrainers returns the distinct trainer names, sorted.
func (db *DB) ListTrainers(ctx context.Context) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT DISTINCT trainer_name FROM evaluations ORDER BY trainer_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainers: %w", err)
	}
	defer rows.Close()

	trainers := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan trainer name: %w", err)
		}
		trainers = append(trainers, name)
	}
	return trainers, rows.Err()
}

// GetStats returns the overall dashboard statistics.
func (db *DB) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(DISTINCT trainer_name),
		        COUNT(DISTINCT evaluator_name),
		        COALESCE(AVG(average_score), 0)
		 FROM evaluations`,
	).Scan(&stats.TotalEvaluations, &stats.TotalTrainers, &stats.TotalEvaluators, &stats.AverageScore)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &stats, nil
}
