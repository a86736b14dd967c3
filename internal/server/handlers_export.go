package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/htaso/evaltracker/internal/evaluation"
	"github.com/htaso/evaltracker/internal/export"
)

const wordContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// handleExportPDF renders a PDF report from an unsaved record in the
// request body. The public form uses this for its download button.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.decodeExportRecord(w, r)
	if !ok {
		return
	}
	s.servePDF(w, rec)
}

// handleExportWord renders a Word report from an unsaved record in the
// request body.
func (s *Server) handleExportWord(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.decodeExportRecord(w, r)
	if !ok {
		return
	}
	s.serveWord(w, rec)
}

// handleStoredExportPDF renders a PDF report for a stored evaluation.
func (s *Server) handleStoredExportPDF(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadEvaluation(w, r)
	if !ok {
		return
	}
	s.servePDF(w, rec)
}

// handleStoredExportWord renders a Word report for a stored evaluation.
func (s *Server) handleStoredExportWord(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadEvaluation(w, r)
	if !ok {
		return
	}
	s.serveWord(w, rec)
}

func (s *Server) decodeExportRecord(w http.ResponseWriter, r *http.Request) (*evaluation.Record, bool) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}

	// Exports accept loosely shaped payloads, including records saved
	// under older schemas, so the record goes through normalization.
	rec := evaluation.NormalizeRecord(raw)
	if rec.TrainerName == "" {
		s.errorResponse(w, http.StatusBadRequest, "trainer_name is required")
		return nil, false
	}
	return rec, true
}

func (s *Server) servePDF(w http.ResponseWriter, rec *evaluation.Record) {
	data, err := export.PDF(rec, s.logoPath)
	if err != nil {
		log.Printf("Error rendering PDF report: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render PDF report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(rec.EvaluatorName, "pdf")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) serveWord(w http.ResponseWriter, rec *evaluation.Record) {
	data, err := export.Word(rec)
	if err != nil {
		log.Printf("Error rendering Word report: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render Word report")
		return
	}

	w.Header().Set("Content-Type", wordContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(rec.EvaluatorName, "docx")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
