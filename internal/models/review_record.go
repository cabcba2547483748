package models

import "time"

// Outcome is the result of a single review.
type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
)

// IsValid reports whether o is a known outcome.
func (o Outcome) IsValid() bool {
	return o == OutcomeCorrect || o == OutcomeWrong
}

// ReviewEvent is one entry in a word's append-only review history.
// Level holds the tier name after the transition, not the ordinal.
type ReviewEvent struct {
	Time   time.Time `json:"time"`
	Result Outcome   `json:"result"`
	Level  string    `json:"level"`
}

// ReviewRecord is the scheduling state for a single word.
//
// Streak counts consecutive correct answers since the last tier change;
// it persists under the historical field name "correct_count".
// WrongTotal is the lifetime number of wrong answers. LastReview and
// NextReview stay nil until the first outcome; a nil NextReview means
// the word is due immediately.
type ReviewRecord struct {
	Word       string        `json:"word"`
	Level      Level         `json:"level"`
	Streak     int           `json:"correct_count"`
	WrongTotal int           `json:"wrong_count"`
	LastReview *time.Time    `json:"last_review"`
	NextReview *time.Time    `json:"next_review"`
	History    []ReviewEvent `json:"review_history"`
	CreatedAt  time.Time     `json:"created_at"`
}

// NewReviewRecord returns a fresh record at NEW with no review
// scheduled yet.
func NewReviewRecord(word string, now time.Time) *ReviewRecord {
	return &ReviewRecord{
		Word:      word,
		Level:     LevelNew,
		History:   []ReviewEvent{},
		CreatedAt: now,
	}
}

// ApplyCorrect records a correct answer at now. Three consecutive
// correct answers promote the word one tier and reset the streak; the
// streak resets at the threshold even when the word already sits at
// PERFECT. The next review is scheduled from the interval of the tier
// reached.
func (r *ReviewRecord) ApplyCorrect(now time.Time) {
	r.Streak++
	if r.Streak >= 3 {
		r.Level = r.Level.Promote()
		r.Streak = 0
	}
	r.LastReview = &now
	next := now.Add(r.Level.Interval())
	r.NextReview = &next
	r.History = append(r.History, ReviewEvent{
		Time:   now,
		Result: OutcomeCorrect,
		Level:  r.Level.String(),
	})
}

// ApplyWrong records a wrong answer at now: the word drops one tier
// (floored at LEARNING), the streak resets, and the next review is
// forced to five minutes out regardless of tier.
func (r *ReviewRecord) ApplyWrong(now time.Time) {
	r.WrongTotal++
	r.Streak = 0
	r.Level = r.Level.Demote()
	r.LastReview = &now
	next := now.Add(WrongRetryInterval)
	r.NextReview = &next
	r.History = append(r.History, ReviewEvent{
		Time:   now,
		Result: OutcomeWrong,
		Level:  r.Level.String(),
	})
}

// IsDue reports whether the word should be reviewed at now. Words with
// no scheduled review are always due.
func (r *ReviewRecord) IsDue(now time.Time) bool {
	if r.NextReview == nil {
		return true
	}
	return !now.Before(*r.NextReview)
}

// MasteryPercent maps the current tier onto 0-100.
func (r *ReviewRecord) MasteryPercent() int {
	return r.Level.MasteryPercent()
}

// Clone returns a deep copy, so records handed out by a store cannot
// be mutated behind its lock.
func (r *ReviewRecord) Clone() ReviewRecord {
	out := *r
	if r.LastReview != nil {
		t := *r.LastReview
		out.LastReview = &t
	}
	if r.NextReview != nil {
		t := *r.NextReview
		out.NextReview = &t
	}
	out.History = make([]ReviewEvent, len(r.History))
	copy(out.History, r.History)
	return out
}
