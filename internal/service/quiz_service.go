package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Barca0412/VocabMaster/internal/models"
)

var (
	// ErrNoDueWords means a quiz was requested with nothing to review.
	ErrNoDueWords = errors.New("service: no words due for review")
	// ErrSessionNotFound means the quiz session id is unknown or
	// already finished.
	ErrSessionNotFound = errors.New("service: quiz session not found")
	// ErrSessionExhausted means every word in the session has been
	// answered; only Finish is left.
	ErrSessionExhausted = errors.New("service: quiz session has no words left")
)

// QuizSession is one in-flight quiz over the user's due words.
type QuizSession struct {
	ID        string    `json:"session_id"`
	Words     []string  `json:"words"`
	Index     int       `json:"index"`
	Correct   int       `json:"correct"`
	Wrong     int       `json:"wrong"`
	StartedAt time.Time `json:"started_at"`
}

// Finished reports whether every word has been answered.
func (s *QuizSession) Finished() bool {
	return s.Index >= len(s.Words)
}

// QuizPrompt is the next word a session expects an answer for.
type QuizPrompt struct {
	SessionID string `json:"session_id"`
	Word      string `json:"word"`
	Position  int    `json:"position"`
	Total     int    `json:"total"`
}

// SubmitResult reports how one answer was graded.
type SubmitResult struct {
	Word      string              `json:"word"`
	Answer    string              `json:"answer"`
	Correct   bool                `json:"correct"`
	Record    models.ReviewRecord `json:"record"`
	Remaining int                 `json:"remaining"`
	Done      bool                `json:"done"`
}

// QuizSummary is the closing tally for a session.
type QuizSummary struct {
	SessionID string        `json:"session_id"`
	Total     int           `json:"total"`
	Correct   int           `json:"correct"`
	Wrong     int           `json:"wrong"`
	Accuracy  float64       `json:"accuracy"`
	Duration  time.Duration `json:"duration"`
}

// QuizService runs recall quizzes against the trainer's due queue.
// Sessions live in memory only; an unfinished session is lost on
// restart, which costs nothing but the running tally.
type QuizService struct {
	trainer *TrainerService

	mu       sync.Mutex
	sessions map[string]*QuizSession
}

func NewQuizService(trainer *TrainerService) *QuizService {
	return &QuizService{
		trainer:  trainer,
		sessions: make(map[string]*QuizSession),
	}
}

// Start drafts up to limit due words into a new session and returns a
// copy of it. ErrNoDueWords when the due queue is empty.
func (q *QuizService) Start(limit int) (QuizSession, error) {
	due := q.trainer.Due(limit)
	if len(due) == 0 {
		return QuizSession{}, ErrNoDueWords
	}

	words := make([]string, len(due))
	for i, rec := range due {
		words[i] = rec.Word
	}

	session := &QuizSession{
		ID:        uuid.New().String(),
		Words:     words,
		StartedAt: q.trainer.clock.Now(),
	}

	q.mu.Lock()
	q.sessions[session.ID] = session
	q.mu.Unlock()

	return copySession(session), nil
}

// Current returns the word the session is waiting on.
func (q *QuizService) Current(sessionID string) (QuizPrompt, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	session, ok := q.sessions[sessionID]
	if !ok {
		return QuizPrompt{}, ErrSessionNotFound
	}
	if session.Finished() {
		return QuizPrompt{}, ErrSessionExhausted
	}

	return QuizPrompt{
		SessionID: session.ID,
		Word:      session.Words[session.Index],
		Position:  session.Index + 1,
		Total:     len(session.Words),
	}, nil
}

// Submit grades the answer against the session's current word, records
// the outcome, and advances the session. A returned ErrSnapshotSave
// still carries a valid result: the grade stood, only the disk write
// failed.
func (q *QuizService) Submit(sessionID, answer string) (SubmitResult, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	session, ok := q.sessions[sessionID]
	if !ok {
		return SubmitResult{}, ErrSessionNotFound
	}
	if session.Finished() {
		return SubmitResult{}, ErrSessionExhausted
	}

	word := session.Words[session.Index]
	correct := checkAnswer(word, answer)

	session.Index++
	if correct {
		session.Correct++
	} else {
		session.Wrong++
	}

	rec, err := q.trainer.RecordOutcome(word, correct, strings.TrimSpace(answer), word)

	return SubmitResult{
		Word:      word,
		Answer:    strings.TrimSpace(answer),
		Correct:   correct,
		Record:    rec,
		Remaining: len(session.Words) - session.Index,
		Done:      session.Finished(),
	}, err
}

// Finish closes the session and returns its tally. Works at any
// point, answered out or not.
func (q *QuizService) Finish(sessionID string) (QuizSummary, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	session, ok := q.sessions[sessionID]
	if !ok {
		return QuizSummary{}, ErrSessionNotFound
	}
	delete(q.sessions, sessionID)

	answered := session.Correct + session.Wrong
	accuracy := 0.0
	if answered > 0 {
		accuracy = float64(session.Correct) / float64(answered) * 100
	}

	return QuizSummary{
		SessionID: session.ID,
		Total:     len(session.Words),
		Correct:   session.Correct,
		Wrong:     session.Wrong,
		Accuracy:  accuracy,
		Duration:  q.trainer.clock.Now().Sub(session.StartedAt),
	}, nil
}

// checkAnswer compares answer and word case-insensitively, ignoring
// surrounding whitespace.
func checkAnswer(word, answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == strings.ToLower(strings.TrimSpace(word))
}

func copySession(s *QuizSession) QuizSession {
	out := *s
	out.Words = make([]string, len(s.Words))
	copy(out.Words, s.Words)
	return out
}
