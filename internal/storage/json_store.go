package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Barca0412/VocabMaster/internal/models"
)

// Snapshot file names, kept stable so existing data directories keep
// loading across versions.
const (
	reviewsFile = "reviews.json"
	wordsFile   = "learning_records.json"
)

// JSONStore persists each snapshot as an indented JSON array in its own
// file under a data directory. The default backend.
type JSONStore struct {
	dir string
}

// NewJSONStore creates the data directory if needed and returns a store
// over it.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

// Dir returns the data directory the store writes into.
func (s *JSONStore) Dir() string { return s.dir }

// LoadReviews reads the review snapshot. A missing file is a fresh
// store; an unreadable or undecodable one returns an empty slice plus
// an error wrapping ErrCorruptSnapshot.
func (s *JSONStore) LoadReviews() ([]models.ReviewRecord, error) {
	var records []models.ReviewRecord
	if err := s.loadFile(reviewsFile, &records); err != nil {
		return []models.ReviewRecord{}, err
	}
	if records == nil {
		records = []models.ReviewRecord{}
	}
	if i := validReviews(records); i >= 0 {
		return []models.ReviewRecord{}, fmt.Errorf("%w: %s: record %d has level %d",
			ErrCorruptSnapshot, reviewsFile, i, int(records[i].Level))
	}
	return records, nil
}

// SaveReviews rewrites the review snapshot file.
func (s *JSONStore) SaveReviews(records []models.ReviewRecord) error {
	return s.saveFile(reviewsFile, records)
}

// LoadWords reads the engagement snapshot, with the same missing/corrupt
// semantics as LoadReviews.
func (s *JSONStore) LoadWords() ([]models.WordRecord, error) {
	var records []models.WordRecord
	if err := s.loadFile(wordsFile, &records); err != nil {
		return []models.WordRecord{}, err
	}
	if records == nil {
		records = []models.WordRecord{}
	}
	return records, nil
}

// SaveWords rewrites the engagement snapshot file.
func (s *JSONStore) SaveWords(records []models.WordRecord) error {
	return s.saveFile(wordsFile, records)
}

// Close implements Store. Nothing to release for files.
func (s *JSONStore) Close() error { return nil }

func (s *JSONStore) loadFile(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, name, err)
	}
	return nil
}

func (s *JSONStore) saveFile(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
