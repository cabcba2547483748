package models

import "time"

// MistakeEvent is one entry in a word's wrong-answer history: what the
// user picked and what the right option was.
type MistakeEvent struct {
	Time     time.Time `json:"time"`
	Selected string    `json:"selected"`
	Correct  string    `json:"correct"`
}

// WordRecord is the lifetime engagement record for a single word: how
// often it was shown and how it fared in quizzes. The tracker maintains
// QuizAttempts == CorrectCount + WrongCount after every event.
type WordRecord struct {
	Word         string         `json:"word"`
	FirstSeen    time.Time      `json:"first_seen"`
	LastSeen     time.Time      `json:"last_seen"`
	ViewCount    int            `json:"view_count"`
	QuizAttempts int            `json:"quiz_attempts"`
	CorrectCount int            `json:"correct_count"`
	WrongCount   int            `json:"wrong_count"`
	WrongHistory []MistakeEvent `json:"wrong_history"`
}

// NewWordRecord returns a fresh record first seen at now.
func NewWordRecord(word string, now time.Time) *WordRecord {
	return &WordRecord{
		Word:         word,
		FirstSeen:    now,
		LastSeen:     now,
		WrongHistory: []MistakeEvent{},
	}
}

// MarkViewed records that the word was shown to the user.
func (r *WordRecord) MarkViewed(now time.Time) {
	r.ViewCount++
	r.LastSeen = now
}

// MarkQuizCorrect records a correct quiz answer.
func (r *WordRecord) MarkQuizCorrect(now time.Time) {
	r.QuizAttempts++
	r.CorrectCount++
	r.LastSeen = now
}

// MarkQuizWrong records a wrong quiz answer along with the option the
// user picked and the option that was right.
func (r *WordRecord) MarkQuizWrong(selected, correct string, now time.Time) {
	r.QuizAttempts++
	r.WrongCount++
	r.LastSeen = now
	r.WrongHistory = append(r.WrongHistory, MistakeEvent{
		Time:     now,
		Selected: selected,
		Correct:  correct,
	})
}

// Accuracy returns the quiz accuracy in percent, 0 when the word was
// never quizzed.
func (r *WordRecord) Accuracy() float64 {
	if r.QuizAttempts == 0 {
		return 0
	}
	return float64(r.CorrectCount) / float64(r.QuizAttempts) * 100
}

// WrongRate returns the fraction of quiz attempts answered wrong, used
// to rank weak words.
func (r *WordRecord) WrongRate() float64 {
	if r.QuizAttempts == 0 {
		return 0
	}
	return float64(r.WrongCount) / float64(r.QuizAttempts)
}

// IsWeak reports whether the word needs focused review: at least three
// quiz attempts with accuracy below 60 percent. Exactly 60 percent is
// not weak.
func (r *WordRecord) IsWeak() bool {
	return r.QuizAttempts >= 3 && r.Accuracy() < 60
}

// Clone returns a deep copy.
func (r *WordRecord) Clone() WordRecord {
	out := *r
	out.WrongHistory = make([]MistakeEvent, len(r.WrongHistory))
	copy(out.WrongHistory, r.WrongHistory)
	return out
}
