package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Barca0412/VocabMaster/internal/models"
)

func newTestQuiz(t *testing.T, words ...string) (*QuizService, *TrainerService, *fakeClock) {
	t.Helper()
	svc, clk := newTestTrainer(&memStore{})
	if len(words) > 0 {
		if _, err := svc.ImportWords(words); err != nil {
			t.Fatalf("ImportWords() error = %v", err)
		}
	}
	return NewQuizService(svc), svc, clk
}

func TestQuizLifecycle(t *testing.T) {
	quiz, trainer, clk := newTestQuiz(t, "apple", "banana", "cherry")

	session, err := quiz.Start(10)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if len(session.Words) != 3 {
		t.Fatalf("session words = %v, want 3", session.Words)
	}

	prompt, err := quiz.Current(session.ID)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if prompt.Position != 1 || prompt.Total != 3 {
		t.Errorf("prompt = %+v, want position 1 of 3", prompt)
	}

	// Case and whitespace do not matter when grading.
	result, err := quiz.Submit(session.ID, "  "+prompt.Word+"  ")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !result.Correct || result.Remaining != 2 {
		t.Errorf("first result = %+v, want correct with 2 remaining", result)
	}

	clk.advance(time.Minute)
	result, err = quiz.Submit(session.ID, "xyz")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if result.Correct {
		t.Error("wrong answer graded correct")
	}
	if result.Record.Level != models.LevelLearning {
		t.Errorf("record level = %v, want LEARNING after wrong answer", result.Record.Level)
	}

	clk.advance(time.Minute)
	prompt, err = quiz.Current(session.ID)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	result, err = quiz.Submit(session.ID, prompt.Word)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !result.Done || result.Remaining != 0 {
		t.Errorf("last result = %+v, want done", result)
	}

	clk.advance(time.Minute)
	summary, err := quiz.Finish(session.ID)
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if summary.Total != 3 || summary.Correct != 2 || summary.Wrong != 1 {
		t.Errorf("summary = %+v, want 2 correct of 3", summary)
	}
	expected := float64(2) / float64(3) * 100
	if summary.Accuracy != expected {
		t.Errorf("summary accuracy = %v, want %v", summary.Accuracy, expected)
	}
	if summary.Duration != 3*time.Minute {
		t.Errorf("summary duration = %v, want 3m", summary.Duration)
	}

	if _, err := quiz.Finish(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Finish() error = %v, want ErrSessionNotFound", err)
	}

	// The trainer saw all three outcomes.
	stats := trainer.TrackerStats()
	if stats.TotalAttempts != 3 || stats.TotalCorrect != 2 {
		t.Errorf("tracker stats = %+v, want 3 attempts with 2 correct", stats)
	}
}

func TestQuizStartWithNothingDue(t *testing.T) {
	quiz, _, _ := newTestQuiz(t)

	if _, err := quiz.Start(10); !errors.Is(err, ErrNoDueWords) {
		t.Errorf("Start() error = %v, want ErrNoDueWords", err)
	}
}

func TestQuizUnknownSession(t *testing.T) {
	quiz, _, _ := newTestQuiz(t, "apple")

	if _, err := quiz.Current("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Current() error = %v, want ErrSessionNotFound", err)
	}
	if _, err := quiz.Submit("nope", "apple"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Submit() error = %v, want ErrSessionNotFound", err)
	}
	if _, err := quiz.Finish("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Finish() error = %v, want ErrSessionNotFound", err)
	}
}

func TestQuizSubmitAfterExhausted(t *testing.T) {
	quiz, _, _ := newTestQuiz(t, "apple")

	session, err := quiz.Start(10)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := quiz.Submit(session.ID, "apple"); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if _, err := quiz.Submit(session.ID, "apple"); !errors.Is(err, ErrSessionExhausted) {
		t.Errorf("Submit() after last word error = %v, want ErrSessionExhausted", err)
	}
	if _, err := quiz.Current(session.ID); !errors.Is(err, ErrSessionExhausted) {
		t.Errorf("Current() after last word error = %v, want ErrSessionExhausted", err)
	}

	// Finish still works on an exhausted session.
	summary, err := quiz.Finish(session.ID)
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if summary.Correct != 1 {
		t.Errorf("summary correct = %d, want 1", summary.Correct)
	}
}

func TestQuizRecordsMistakeDetail(t *testing.T) {
	quiz, trainer, _ := newTestQuiz(t, "banana")

	session, err := quiz.Start(10)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if _, err := quiz.Submit(session.ID, " banan "); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	mistakes := trainer.RecentMistakes(5)
	if len(mistakes) != 1 {
		t.Fatalf("RecentMistakes() = %v, want one record", mistakes)
	}
	history := mistakes[0].WrongHistory
	if len(history) != 1 || history[0].Selected != "banan" || history[0].Correct != "banana" {
		t.Errorf("mistake history = %+v, want banan recorded against banana", history)
	}
}

func TestQuizSessionCopyIsDetached(t *testing.T) {
	quiz, _, _ := newTestQuiz(t, "apple", "banana")

	session, err := quiz.Start(10)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	session.Words[0] = "mangled"

	prompt, err := quiz.Current(session.ID)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if prompt.Word == "mangled" {
		t.Error("mutating the returned session changed internal state")
	}
}
