// Package storage reads and writes evaluations as JSON files on disk.
// This was the persistence model before the database; it remains as the
// source format for legacy imports.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/htaso/evaltracker/internal/evaluation"
)

// Store is a directory of per-trainer subdirectories, each holding one JSON
// file per submitted evaluation.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory does not need to exist
// until the first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Entry is one evaluation file with its dashboard metadata.
type Entry struct {
	Path           string  `json:"path"`
	Trainer        string  `json:"trainer"`
	Evaluator      string  `json:"evaluator"`
	TrainingDate   string  `json:"training_date"`
	SubmissionDate string  `json:"submission_date"`
	Average        float64 `json:"average"`
	TotalScore     float64 `json:"total_score"`
	TotalPossible  float64 `json:"total_possible"`
	Recommendation string  `json:"recommendation"`
}

// SanitizeFilename reduces a name to filename-safe characters.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Save writes a record under <dir>/<trainer>/<evaluator>_<timestamp>.json
// and returns the file path.
func (s *Store) Save(rec *evaluation.Record) (string, error) {
	trainer := SanitizeFilename(rec.TrainerName)
	if trainer == "" {
		trainer = "Unknown"
	}
	trainerDir := filepath.Join(s.dir, trainer)
	if err := os.MkdirAll(trainerDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create trainer directory: %w", err)
	}

	evaluator := SanitizeFilename(rec.EvaluatorName)
	if evaluator == "" {
		evaluator = "Unknown"
	}
	name := fmt.Sprintf("%s_%s.json", evaluator, time.Now().Format("20060102_150405"))
	path := filepath.Join(trainerDir, name)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal evaluation: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write evaluation file: %w", err)
	}
	return path, nil
}

// List returns metadata for every readable evaluation file. Trainers sort
// ascending; within a trainer, files sort newest first by filename
// timestamp. Malformed files are skipped.
func (s *Store) List() ([]Entry, error) {
	entries := make([]Entry, 0)

	trainerDirs, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	for _, trainerDir := range trainerDirs {
		if !trainerDir.IsDir() {
			continue
		}

		files, err := os.ReadDir(filepath.Join(s.dir, trainerDir.Name()))
		if err != nil {
			continue
		}

		names := make([]string, 0, len(files))
		for _, f := range files {
			if !f.IsDir() && strings.HasSuffix(f.Name(), ".json") {
				names = append(names, f.Name())
			}
		}
		sort.Sort(sort.Reverse(sort.StringSlice(names)))

		for _, name := range names {
			path := filepath.Join(s.dir, trainerDir.Name(), name)
			raw, err := loadRaw(path)
			if err != nil {
				continue
			}

			rec := evaluation.NormalizeRecord(raw)
			entries = append(entries, Entry{
				Path:           path,
				Trainer:        trainerDir.Name(),
				Evaluator:      orUnknown(rec.EvaluatorName),
				TrainingDate:   orNA(rec.TrainingDate),
				SubmissionDate: orNA(rec.SubmissionDate),
				Average:        rec.AverageScore,
				TotalScore:     rec.TotalScore,
				TotalPossible:  rec.TotalPossible,
				Recommendation: orDefault(rec.Recommendation, "Not Selected"),
			})
		}
	}

	return entries, nil
}

// Load reads one evaluation file and normalizes it to the current schema.
func (s *Store) Load(path string) (*evaluation.Record, error) {
	raw, err := loadRaw(path)
	if err != nil {
		return nil, err
	}
	return evaluation.NormalizeRecord(raw), nil
}

func loadRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read evaluation file: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse evaluation file %s: %w", path, err)
	}
	return raw, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
