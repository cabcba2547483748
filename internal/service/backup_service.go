package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Barca0412/VocabMaster/internal/clock"
	"github.com/Barca0412/VocabMaster/internal/models"
	"github.com/Barca0412/VocabMaster/internal/storage"
)

// BackupData is the portable envelope holding both snapshots. The
// layout is backend-independent, so a backup taken against SQLite
// restores into Postgres or plain JSON files unchanged.
type BackupData struct {
	Version    string                `json:"version"`
	BackupID   string                `json:"backup_id"`
	ExportedAt time.Time             `json:"exported_at"`
	Store      string                `json:"store"`
	Reviews    []models.ReviewRecord `json:"reviews"`
	Words      []models.WordRecord   `json:"words"`
}

const backupVersion = "1.0"

// BackupService exports and imports snapshot envelopes against the
// configured store. It works below the trainer: imports become
// visible on the next application start.
type BackupService struct {
	store   storage.Store
	clock   clock.Clock
	backend string
}

// NewBackupService creates a new backup service
func NewBackupService(store storage.Store, clk clock.Clock, backend string) *BackupService {
	return &BackupService{
		store:   store,
		clock:   clk,
		backend: backend,
	}
}

// ExportToWriter writes the full envelope to w. Unlike normal loads, a
// corrupt snapshot aborts the export: a backup must never silently
// capture partial data.
func (s *BackupService) ExportToWriter(w io.Writer) error {
	reviews, err := s.store.LoadReviews()
	if err != nil {
		return fmt.Errorf("failed to load review snapshot: %w", err)
	}
	words, err := s.store.LoadWords()
	if err != nil {
		return fmt.Errorf("failed to load word snapshot: %w", err)
	}

	backup := &BackupData{
		Version:    backupVersion,
		BackupID:   uuid.New().String(),
		ExportedAt: s.clock.Now(),
		Store:      s.backend,
		Reviews:    reviews,
		Words:      words,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	log.Printf("Exported %d review records and %d word records", len(reviews), len(words))
	return nil
}

// Export writes the envelope to a file.
func (s *BackupService) Export(outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := s.ExportToWriter(file); err != nil {
		return err
	}

	log.Printf("Backup written to %s", outputPath)
	return nil
}

// ImportFromReader restores an envelope. With clear set the snapshots
// are replaced outright; otherwise backup records are merged over
// existing ones, keyed by word. Returns how many review and word
// records the store holds afterwards.
func (s *BackupService) ImportFromReader(r io.Reader, clear bool) (int, int, error) {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return 0, 0, fmt.Errorf("failed to decode backup: %w", err)
	}
	for _, rec := range backup.Reviews {
		if !rec.Level.IsValid() {
			return 0, 0, fmt.Errorf("backup contains invalid level %d for word %q", rec.Level, rec.Word)
		}
	}

	reviews := backup.Reviews
	words := backup.Words
	if !clear {
		existingReviews, err := s.store.LoadReviews()
		if err != nil {
			return 0, 0, fmt.Errorf("failed to load current review snapshot: %w", err)
		}
		existingWords, err := s.store.LoadWords()
		if err != nil {
			return 0, 0, fmt.Errorf("failed to load current word snapshot: %w", err)
		}
		reviews = mergeReviews(existingReviews, backup.Reviews)
		words = mergeWords(existingWords, backup.Words)
	}

	if err := s.store.SaveReviews(reviews); err != nil {
		return 0, 0, fmt.Errorf("failed to save review snapshot: %w", err)
	}
	if err := s.store.SaveWords(words); err != nil {
		return 0, 0, fmt.Errorf("failed to save word snapshot: %w", err)
	}

	return len(reviews), len(words), nil
}

// Import restores an envelope from a file.
func (s *BackupService) Import(inputPath string, clear bool) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	reviewCount, wordCount, err := s.ImportFromReader(file, clear)
	if err != nil {
		return err
	}

	log.Printf("Store now holds %d review records and %d word records", reviewCount, wordCount)
	return nil
}

// mergeReviews overlays backup records on existing ones. A word in
// both keeps the backup's version.
func mergeReviews(existing, backup []models.ReviewRecord) []models.ReviewRecord {
	index := make(map[string]int, len(existing))
	merged := make([]models.ReviewRecord, len(existing))
	copy(merged, existing)

	for i, rec := range merged {
		index[rec.Word] = i
	}
	for _, rec := range backup {
		if i, ok := index[rec.Word]; ok {
			merged[i] = rec
		} else {
			merged = append(merged, rec)
		}
	}
	return merged
}

func mergeWords(existing, backup []models.WordRecord) []models.WordRecord {
	index := make(map[string]int, len(existing))
	merged := make([]models.WordRecord, len(existing))
	copy(merged, existing)

	for i, rec := range merged {
		index[rec.Word] = i
	}
	for _, rec := range backup {
		if i, ok := index[rec.Word]; ok {
			merged[i] = rec
		} else {
			merged = append(merged, rec)
		}
	}
	return merged
}
