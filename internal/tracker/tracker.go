// Package tracker implements the engagement store: lifetime view and
// quiz statistics per word, weak-word detection, and the structured
// learning report.
package tracker

import (
	"sort"
	"sync"
	"time"

	"github.com/Barca0412/VocabMaster/internal/models"
)

// Recommendation texts picked by overall accuracy tier.
const (
	adviceAdvance   = "Accuracy is high. Keep it up and move on to harder words."
	adviceWeakFocus = "Decent accuracy with room to grow. Review your weak words first."
	adviceSlowDown  = "Slow down and reinforce the basics before adding new words."
)

// Tracker owns the per-word engagement records. Independent of the
// scheduler: the two stores may track different key sets. All methods
// are safe for concurrent use and hand out deep copies.
type Tracker struct {
	mu      sync.Mutex
	records map[string]*models.WordRecord
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{records: make(map[string]*models.WordRecord)}
}

func (t *Tracker) getOrCreate(word string, now time.Time) *models.WordRecord {
	rec, ok := t.records[word]
	if !ok {
		rec = models.NewWordRecord(word, now)
		t.records[word] = rec
	}
	return rec
}

// RecordView notes that the word was shown to the user.
func (t *Tracker) RecordView(word string, now time.Time) models.WordRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec := t.getOrCreate(word, now)
	rec.MarkViewed(now)
	return rec.Clone()
}

// RecordCorrect notes a correct quiz answer for the word.
func (t *Tracker) RecordCorrect(word string, now time.Time) models.WordRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec := t.getOrCreate(word, now)
	rec.MarkQuizCorrect(now)
	return rec.Clone()
}

// RecordWrong notes a wrong quiz answer for the word, keeping the
// picked and correct options in the wrong-answer history.
func (t *Tracker) RecordWrong(word, selected, correct string, now time.Time) models.WordRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec := t.getOrCreate(word, now)
	rec.MarkQuizWrong(selected, correct, now)
	return rec.Clone()
}

// WeakWords returns the weak words ranked by wrong rate, worst first,
// ties broken by word so the order is deterministic. A positive limit
// truncates the result.
func (t *Tracker) WeakWords(limit int) []models.WordRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	weak := make([]models.WordRecord, 0)
	for _, rec := range t.records {
		if rec.IsWeak() {
			weak = append(weak, rec.Clone())
		}
	}

	sort.Slice(weak, func(i, j int) bool {
		ri, rj := weak[i].WrongRate(), weak[j].WrongRate()
		if ri != rj {
			return ri > rj
		}
		return weak[i].Word < weak[j].Word
	})

	if limit > 0 && len(weak) > limit {
		weak = weak[:limit]
	}
	return weak
}

// RecentMistakes returns words with at least one wrong answer, most
// recently seen first. A positive limit truncates the result.
func (t *Tracker) RecentMistakes(limit int) []models.WordRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	mistakes := make([]models.WordRecord, 0)
	for _, rec := range t.records {
		if rec.WrongCount > 0 {
			mistakes = append(mistakes, rec.Clone())
		}
	}

	sort.Slice(mistakes, func(i, j int) bool {
		if !mistakes[i].LastSeen.Equal(mistakes[j].LastSeen) {
			return mistakes[i].LastSeen.After(mistakes[j].LastSeen)
		}
		return mistakes[i].Word < mistakes[j].Word
	})

	if limit > 0 && len(mistakes) > limit {
		mistakes = mistakes[:limit]
	}
	return mistakes
}

// Statistics aggregates the whole store, including the top five most
// viewed and most mistaken words (zero-count entries excluded).
func (t *Tracker) Statistics() models.TrackerStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	stats := models.TrackerStats{
		TotalWords:   len(t.records),
		MostViewed:   []models.ViewedWord{},
		MostMistaken: []models.MistakenWord{},
	}
	if len(t.records) == 0 {
		return stats
	}

	all := make([]*models.WordRecord, 0, len(t.records))
	for _, rec := range t.records {
		all = append(all, rec)
		if rec.ViewCount > 0 {
			stats.ViewedWords++
		}
		if rec.QuizAttempts > 0 {
			stats.QuizzedWords++
		}
		if rec.IsWeak() {
			stats.WeakWords++
		}
		stats.TotalAttempts += rec.QuizAttempts
		stats.TotalCorrect += rec.CorrectCount
	}
	if stats.TotalAttempts > 0 {
		stats.OverallAccuracy = float64(stats.TotalCorrect) / float64(stats.TotalAttempts) * 100
	}

	// Top five by views, then drop zero-view entries.
	sort.Slice(all, func(i, j int) bool {
		if all[i].ViewCount != all[j].ViewCount {
			return all[i].ViewCount > all[j].ViewCount
		}
		return all[i].Word < all[j].Word
	})
	for _, rec := range topFive(all) {
		if rec.ViewCount > 0 {
			stats.MostViewed = append(stats.MostViewed, models.ViewedWord{
				Word:  rec.Word,
				Views: rec.ViewCount,
			})
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].WrongCount != all[j].WrongCount {
			return all[i].WrongCount > all[j].WrongCount
		}
		return all[i].Word < all[j].Word
	})
	for _, rec := range topFive(all) {
		if rec.WrongCount > 0 {
			stats.MostMistaken = append(stats.MostMistaken, models.MistakenWord{
				Word:     rec.Word,
				Wrong:    rec.WrongCount,
				Accuracy: rec.Accuracy(),
			})
		}
	}

	return stats
}

func topFive(records []*models.WordRecord) []*models.WordRecord {
	if len(records) > 5 {
		return records[:5]
	}
	return records
}

// Report builds the structured study summary: the aggregate statistics,
// the ten weakest words, the five most recent mistakes, and an advice
// line picked by overall accuracy. Composes the public accessors, so it
// takes no lock of its own.
func (t *Tracker) Report() models.LearningReport {
	stats := t.Statistics()

	report := models.LearningReport{
		Stats:          stats,
		WeakWords:      t.WeakWords(10),
		RecentMistakes: t.RecentMistakes(5),
	}
	switch {
	case stats.OverallAccuracy >= 80:
		report.Recommendation = adviceAdvance
	case stats.OverallAccuracy >= 60:
		report.Recommendation = adviceWeakFocus
	default:
		report.Recommendation = adviceSlowDown
	}
	return report
}

// Len returns the number of tracked words.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// Snapshot returns every record, sorted by word, for persistence.
func (t *Tracker) Snapshot() []models.WordRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.WordRecord, 0, len(t.records))
	for _, rec := range t.records {
		out = append(out, rec.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

// Restore replaces the store contents with the given records.
func (t *Tracker) Restore(records []models.WordRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = make(map[string]*models.WordRecord, len(records))
	for i := range records {
		rec := records[i].Clone()
		t.records[rec.Word] = &rec
	}
}

// Reset drops every record.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = make(map[string]*models.WordRecord)
}
