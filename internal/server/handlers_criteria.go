package server

import (
	"log"
	"net/http"

	"github.com/htaso/evaltracker/internal/criteria"
	"github.com/htaso/evaltracker/internal/evaluation"
)

// CriteriaResponse is the criteria tree plus the form option lists the
// client renders selects from.
type CriteriaResponse struct {
	Sections              []*criteria.Section `json:"sections"`
	RatingOptions         []string            `json:"rating_options"`
	RecommendationOptions []string            `json:"recommendation_options"`
	RecommendationColors  map[string]string   `json:"recommendation_colors"`
	Warning               string              `json:"warning,omitempty"`
}

// handleGetCriteria returns the evaluation criteria parsed from the
// workbook. A missing or unreadable workbook is not fatal: the form comes
// back empty with a warning so the client can still render.
func (s *Server) handleGetCriteria(w http.ResponseWriter, _ *http.Request) {
	resp := CriteriaResponse{
		Sections:              []*criteria.Section{},
		RatingOptions:         append(append([]string{}, evaluation.RatingOptions...), evaluation.NotObservedLabel),
		RecommendationOptions: append([]string{}, evaluation.RecommendationOptions...),
		RecommendationColors:  evaluation.RecommendationColors,
	}

	sections, err := criteria.LoadFromWorkbook(s.criteriaPath)
	if err != nil {
		log.Printf("Warning: could not load criteria workbook: %v", err)
		resp.Warning = "Evaluation criteria could not be loaded"
	} else {
		resp.Sections = sections
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
