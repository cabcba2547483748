package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/Barca0412/VocabMaster/internal/clock"
	"github.com/Barca0412/VocabMaster/internal/models"
	"github.com/Barca0412/VocabMaster/internal/srs"
	"github.com/Barca0412/VocabMaster/internal/storage"
	"github.com/Barca0412/VocabMaster/internal/tracker"
	"github.com/Barca0412/VocabMaster/internal/validation"
)

// ErrSnapshotSave marks persistence failures after a successful
// in-memory mutation. The mutation stands: in-memory state is
// authoritative, and the next mutating call rewrites the full
// snapshot, retrying implicitly. Check with errors.Is.
var ErrSnapshotSave = errors.New("service: snapshot save failed")

// Default result sizes for list queries.
const (
	DefaultDueLimit      = 20
	DefaultWeakLimit     = 20
	DefaultMistakesLimit = 10
)

// TrainerService is the boundary in front of the scheduler and the
// tracker: it normalizes keys, stamps time from the injected clock,
// and persists a full snapshot after every mutating call.
type TrainerService struct {
	scheduler *srs.Scheduler
	tracker   *tracker.Tracker
	store     storage.Store
	clock     clock.Clock

	loadWarnings []string
}

// NewTrainerService loads both snapshots from the store. Load failures
// are demoted to warnings, never errors: a missing or corrupt snapshot
// means starting empty, not crashing.
func NewTrainerService(store storage.Store, clk clock.Clock) *TrainerService {
	s := &TrainerService{
		scheduler: srs.NewScheduler(),
		tracker:   tracker.NewTracker(),
		store:     store,
		clock:     clk,
	}

	reviews, err := store.LoadReviews()
	if err != nil {
		s.warn(fmt.Sprintf("review snapshot: %v", err))
	}
	s.scheduler.Restore(reviews)

	words, err := store.LoadWords()
	if err != nil {
		s.warn(fmt.Sprintf("word snapshot: %v", err))
	}
	s.tracker.Restore(words)

	return s
}

func (s *TrainerService) warn(msg string) {
	log.Printf("Warning: %s", msg)
	s.loadWarnings = append(s.loadWarnings, msg)
}

// LoadWarnings returns the non-fatal problems hit while loading
// snapshots, for the presentation layer to surface to the user.
func (s *TrainerService) LoadWarnings() []string {
	out := make([]string, len(s.loadWarnings))
	copy(out, s.loadWarnings)
	return out
}

// Due returns the words ready for review now, lowest tier first.
// limit <= 0 falls back to DefaultDueLimit.
func (s *TrainerService) Due(limit int) []models.ReviewRecord {
	if limit <= 0 {
		limit = DefaultDueLimit
	}
	return s.scheduler.DueWords(s.clock.Now(), limit)
}

// RecordOutcome applies one quiz outcome to both stores and persists
// them. On a wrong answer, selected and correctAnswer land in the
// word's mistake history; an empty correctAnswer defaults to the word
// itself. The returned record reflects the new scheduling state even
// when the error is ErrSnapshotSave.
func (s *TrainerService) RecordOutcome(word string, correct bool, selected, correctAnswer string) (models.ReviewRecord, error) {
	key, err := validation.NormalizeWord(word)
	if err != nil {
		return models.ReviewRecord{}, err
	}
	now := s.clock.Now()

	var rec models.ReviewRecord
	if correct {
		rec = s.scheduler.RecordCorrect(key, now)
		s.tracker.RecordCorrect(key, now)
	} else {
		if correctAnswer == "" {
			correctAnswer = key
		}
		rec = s.scheduler.RecordWrong(key, now)
		s.tracker.RecordWrong(key, selected, correctAnswer, now)
	}

	return rec, s.persistAll()
}

// RecordView notes that the word was shown to the user and persists
// the engagement snapshot.
func (s *TrainerService) RecordView(word string) (models.WordRecord, error) {
	key, err := validation.NormalizeWord(word)
	if err != nil {
		return models.WordRecord{}, err
	}

	rec := s.tracker.RecordView(key, s.clock.Now())
	return rec, s.persistWords()
}

// ImportWords registers new words for review and persists the review
// snapshot. Entries that do not normalize to a usable key are skipped.
// Returns the number of words that were actually new.
func (s *TrainerService) ImportWords(words []string) (int, error) {
	keys := make([]string, 0, len(words))
	for _, word := range words {
		key, err := validation.NormalizeWord(word)
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}

	added := s.scheduler.ImportWords(keys, s.clock.Now())
	if added == 0 {
		return 0, nil
	}
	return added, s.persistReviews()
}

// Reviews returns the full scheduling state, sorted by word.
func (s *TrainerService) Reviews() []models.ReviewRecord {
	return s.scheduler.Snapshot()
}

// Stats summarizes the review store as of now.
func (s *TrainerService) Stats() models.SchedulerStats {
	return s.scheduler.Stats(s.clock.Now())
}

// TrackerStats aggregates the engagement store.
func (s *TrainerService) TrackerStats() models.TrackerStats {
	return s.tracker.Statistics()
}

// Report builds the structured study summary.
func (s *TrainerService) Report() models.LearningReport {
	return s.tracker.Report()
}

// WeakWords lists the words flagged for priority review, worst first.
// limit <= 0 falls back to DefaultWeakLimit.
func (s *TrainerService) WeakWords(limit int) []models.WordRecord {
	if limit <= 0 {
		limit = DefaultWeakLimit
	}
	return s.tracker.WeakWords(limit)
}

// RecentMistakes lists words answered wrong, most recent first.
// limit <= 0 falls back to DefaultMistakesLimit.
func (s *TrainerService) RecentMistakes(limit int) []models.WordRecord {
	if limit <= 0 {
		limit = DefaultMistakesLimit
	}
	return s.tracker.RecentMistakes(limit)
}

// Reset wipes both stores and persists the empty snapshots. The only
// way existing records are deleted.
func (s *TrainerService) Reset() error {
	s.scheduler.Reset()
	s.tracker.Reset()
	return s.persistAll()
}

func (s *TrainerService) persistReviews() error {
	if err := s.store.SaveReviews(s.scheduler.Snapshot()); err != nil {
		return fmt.Errorf("%w: reviews: %v", ErrSnapshotSave, err)
	}
	return nil
}

func (s *TrainerService) persistWords() error {
	if err := s.store.SaveWords(s.tracker.Snapshot()); err != nil {
		return fmt.Errorf("%w: words: %v", ErrSnapshotSave, err)
	}
	return nil
}

func (s *TrainerService) persistAll() error {
	if err := s.persistReviews(); err != nil {
		return err
	}
	return s.persistWords()
}
