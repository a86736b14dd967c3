package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/htaso/evaltracker/internal/criteria"
	"github.com/htaso/evaltracker/internal/db"
	"github.com/htaso/evaltracker/internal/evaluation"
)

// SubmitEvaluationRequest is the public evaluation submission payload.
// Ratings maps item keys to the selected label; unrated items may be
// omitted or carry the no-selection placeholder.
type SubmitEvaluationRequest struct {
	EvaluatorName    string              `json:"evaluator_name" validate:"required"`
	TrainerName      string              `json:"trainer_name" validate:"required"`
	TrainingDate     string              `json:"training_date" validate:"required"`
	ObservationDate  string              `json:"observation_date"`
	TrainingLocation string              `json:"training_location"`
	EvalType         string              `json:"eval_type"`
	Recommendation   string              `json:"recommendation" validate:"required"`
	Ratings          map[string]string   `json:"ratings"`
	Comments         evaluation.Comments `json:"comments"`
}

var submitValidator = validator.New()

// handleSubmitEvaluation scores a submitted form against the criteria tree
// and persists the resulting record.
func (s *Server) handleSubmitEvaluation(w http.ResponseWriter, r *http.Request) {
	var req SubmitEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := submitValidator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if req.Recommendation == evaluation.NoRecommendationSentinel {
		s.errorResponse(w, http.StatusBadRequest, "An overall recommendation is required")
		return
	}

	rec, err := s.buildRecord(&req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to score evaluation")
		return
	}

	id, err := s.store.SaveEvaluation(r.Context(), rec)
	if err != nil {
		log.Printf("Error saving evaluation: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save evaluation")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":            id,
		"average_score": rec.AverageScore,
		"total_score":   rec.TotalScore,
	})
}

// buildRecord scores the submission. Selections are collected in criteria
// tree order so the stored entries read in form order regardless of the
// request's map iteration.
func (s *Server) buildRecord(req *SubmitEvaluationRequest) (*evaluation.Record, error) {
	sections, err := criteria.LoadFromWorkbook(s.criteriaPath)
	if err != nil {
		log.Printf("Warning: scoring without criteria workbook: %v", err)
		sections = nil
	}

	details := make(map[string]evaluation.Detail)
	selections := make([]evaluation.Selection, 0)
	for _, section := range sections {
		for _, sub := range section.Subsections {
			for _, item := range sub.Items {
				details[item.Key] = evaluation.Detail{
					Section:    section.Name,
					Subsection: sub.Name,
					Prompt:     item.Text,
				}
				choice, ok := req.Ratings[item.Key]
				if !ok {
					choice = evaluation.NoSelectionSentinel
				}
				selections = append(selections, evaluation.Selection{Key: item.Key, Choice: choice})
			}
		}
	}

	summary := evaluation.CollectRatings(selections, details)

	return &evaluation.Record{
		EvaluatorName:    req.EvaluatorName,
		TrainerName:      req.TrainerName,
		TrainingDate:     req.TrainingDate,
		ObservationDate:  req.ObservationDate,
		TrainingLocation: req.TrainingLocation,
		EvalType:         req.EvalType,
		Recommendation:   req.Recommendation,
		Ratings:          summary.Entries,
		AverageScore:     summary.Average,
		ScorePercentage:  summary.Average * 100,
		RatedItemCount:   summary.RatedCount,
		TotalScore:       summary.TotalScore,
		TotalPossible:    summary.TotalPossible,
		ScoreCounts:      summary.ScoreCounts,
		SectionTotals:    summary.SectionTotals,
		Comments:         req.Comments,
		SubmissionDate:   time.Now().Format("01/02/2006 03:04 PM"),
	}, nil
}

// handleListEvaluations returns evaluation summaries for the admin
// dashboard. Query parameters narrow the result: trainer filters exactly,
// evaluator matches partially, start_date and end_date bound the training
// date.
func (s *Server) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := db.SearchFilter{
		EvaluatorName: q.Get("evaluator"),
		TrainerName:   q.Get("trainer"),
		StartDate:     q.Get("start_date"),
		EndDate:       q.Get("end_date"),
	}

	var (
		summaries []db.EvaluationSummary
		err       error
	)
	if filter.EvaluatorName != "" || filter.StartDate != "" || filter.EndDate != "" {
		summaries, err = s.store.SearchEvaluations(r.Context(), filter)
	} else {
		summaries, err = s.store.ListEvaluations(r.Context(), filter.TrainerName)
	}
	if err != nil {
		log.Printf("Error listing evaluations: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list evaluations")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"evaluations": summaries})
}

// handleGetEvaluation returns one full evaluation record.
func (s *Server) handleGetEvaluation(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadEvaluation(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteEvaluation removes an evaluation record.
func (s *Server) handleDeleteEvaluation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid evaluation ID")
		return
	}

	deleted, err := s.store.DeleteEvaluation(r.Context(), id)
	if err != nil {
		log.Printf("Error deleting evaluation: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete evaluation")
		return
	}
	if !deleted {
		notFound := &ErrEvaluationNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Evaluation deleted"})
}

// handleGetStats returns dashboard statistics.
func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetStats(r.Context())
	if err != nil {
		log.Printf("Error getting stats: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get stats")
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}

// handleListTrainers returns the distinct trainer names.
func (s *Server) handleListTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := s.store.ListTrainers(r.Context())
	if err != nil {
		log.Printf("Error listing trainers: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list trainers")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"trainers": trainers})
}

// loadEvaluation parses the path ID and fetches the record, writing the
// error response itself when either step fails.
func (s *Server) loadEvaluation(w http.ResponseWriter, r *http.Request) (*evaluation.Record, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid evaluation ID")
		return nil, false
	}

	rec, err := s.store.GetEvaluation(r.Context(), id)
	if err != nil {
		log.Printf("Error getting evaluation: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get evaluation")
		return nil, false
	}
	if rec == nil {
		notFound := &ErrEvaluationNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return nil, false
	}
	return rec, true
}
