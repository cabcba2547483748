// Package srs implements the fixed-interval spaced repetition store:
// a map of per-word review records plus the due-query, outcome, and
// import operations over it.
package srs

import (
	"sort"
	"sync"
	"time"

	"github.com/Barca0412/VocabMaster/internal/models"
)

// Scheduler owns the review records and decides when each word comes
// up next. All methods are safe for concurrent use; records crossing
// the boundary are deep copies, so nothing escapes the lock. The
// scheduler holds no clock; every operation takes an explicit now.
type Scheduler struct {
	mu      sync.Mutex
	records map[string]*models.ReviewRecord
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{records: make(map[string]*models.ReviewRecord)}
}

func (s *Scheduler) getOrCreate(word string, now time.Time) *models.ReviewRecord {
	rec, ok := s.records[word]
	if !ok {
		rec = models.NewReviewRecord(word, now)
		s.records[word] = rec
	}
	return rec
}

// RecordCorrect applies a correct answer to the word, creating the
// record on first reference, and returns the updated state.
func (s *Scheduler) RecordCorrect(word string, now time.Time) models.ReviewRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.getOrCreate(word, now)
	rec.ApplyCorrect(now)
	return rec.Clone()
}

// RecordWrong applies a wrong answer to the word, creating the record
// on first reference, and returns the updated state.
func (s *Scheduler) RecordWrong(word string, now time.Time) models.ReviewRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.getOrCreate(word, now)
	rec.ApplyWrong(now)
	return rec.Clone()
}

// DueWords returns the words due for review at now: lowest tier first,
// and within a tier the longest overdue first, with never-scheduled
// words ahead of everything at their tier. Ties fall back to the word
// itself so the order is deterministic. A positive limit truncates the
// result.
func (s *Scheduler) DueWords(now time.Time, limit int) []models.ReviewRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	due := make([]models.ReviewRecord, 0)
	for _, rec := range s.records {
		if rec.IsDue(now) {
			due = append(due, rec.Clone())
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].Level != due[j].Level {
			return due[i].Level < due[j].Level
		}
		ti, tj := dueTime(due[i]), dueTime(due[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return due[i].Word < due[j].Word
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}

// dueTime orders nil next-review timestamps before every real one.
func dueTime(r models.ReviewRecord) time.Time {
	if r.NextReview == nil {
		return time.Time{}
	}
	return *r.NextReview
}

// ImportWords registers words for review, creating absent records at
// NEW with no schedule. Existing records are untouched, so importing
// the same list twice is a no-op. Returns the number of new records.
func (s *Scheduler) ImportWords(words []string, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, word := range words {
		if _, ok := s.records[word]; !ok {
			s.records[word] = models.NewReviewRecord(word, now)
			added++
		}
	}
	return added
}

// Stats summarizes the store at now: per-tier counts, how many words
// are due, and the mean mastery percentage.
func (s *Scheduler) Stats(now time.Time) models.SchedulerStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.SchedulerStats{TotalWords: len(s.records)}
	if len(s.records) == 0 {
		return stats
	}

	totalMastery := 0
	for _, rec := range s.records {
		switch rec.Level {
		case models.LevelNew:
			stats.New++
		case models.LevelLearning:
			stats.Learning++
		case models.LevelYoung:
			stats.Young++
		case models.LevelMature:
			stats.Mature++
		case models.LevelMastered:
			stats.Mastered++
		case models.LevelPerfect:
			stats.Perfect++
		}
		totalMastery += rec.MasteryPercent()
		if rec.IsDue(now) {
			stats.DueCount++
		}
	}
	stats.AverageMastery = totalMastery / len(s.records)
	return stats
}

// Len returns the number of tracked words.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Snapshot returns every record, sorted by word, for persistence.
func (s *Scheduler) Snapshot() []models.ReviewRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ReviewRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

// Restore replaces the store contents with the given records.
func (s *Scheduler) Restore(records []models.ReviewRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]*models.ReviewRecord, len(records))
	for i := range records {
		rec := records[i].Clone()
		s.records[rec.Word] = &rec
	}
}

// Reset drops every record. The only way scheduling state is deleted.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]*models.ReviewRecord)
}
