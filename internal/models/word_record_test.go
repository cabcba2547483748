package models

import (
	"testing"
	"time"
)

func TestWordRecordCountersStayConsistent(t *testing.T) {
	rec := NewWordRecord("banana", testBase)

	events := []struct {
		kind string
		at   time.Time
	}{
		{"view", testBase},
		{"correct", testBase.Add(1 * time.Minute)},
		{"wrong", testBase.Add(2 * time.Minute)},
		{"view", testBase.Add(3 * time.Minute)},
		{"wrong", testBase.Add(4 * time.Minute)},
		{"correct", testBase.Add(5 * time.Minute)},
	}

	for _, ev := range events {
		switch ev.kind {
		case "view":
			rec.MarkViewed(ev.at)
		case "correct":
			rec.MarkQuizCorrect(ev.at)
		case "wrong":
			rec.MarkQuizWrong("x", "banana", ev.at)
		}
		if rec.QuizAttempts != rec.CorrectCount+rec.WrongCount {
			t.Fatalf("after %s: attempts = %d, correct+wrong = %d",
				ev.kind, rec.QuizAttempts, rec.CorrectCount+rec.WrongCount)
		}
		if !rec.LastSeen.Equal(ev.at) {
			t.Fatalf("after %s: LastSeen = %v, want %v", ev.kind, rec.LastSeen, ev.at)
		}
	}

	if rec.ViewCount != 2 {
		t.Errorf("ViewCount = %v, want 2", rec.ViewCount)
	}
	if rec.QuizAttempts != 4 || rec.CorrectCount != 2 || rec.WrongCount != 2 {
		t.Errorf("counters = %d/%d/%d, want 4/2/2",
			rec.QuizAttempts, rec.CorrectCount, rec.WrongCount)
	}
	if len(rec.WrongHistory) != 2 {
		t.Errorf("WrongHistory length = %v, want 2", len(rec.WrongHistory))
	}
	if rec.WrongHistory[0].Selected != "x" || rec.WrongHistory[0].Correct != "banana" {
		t.Errorf("WrongHistory[0] = %+v, want selected x, correct banana", rec.WrongHistory[0])
	}
}

func TestWordRecordAccuracy(t *testing.T) {
	rec := NewWordRecord("banana", testBase)

	if rec.Accuracy() != 0 {
		t.Errorf("Accuracy() with no attempts = %v, want 0", rec.Accuracy())
	}

	rec.MarkQuizCorrect(testBase)
	rec.MarkQuizWrong("a", "banana", testBase)
	rec.MarkQuizWrong("b", "banana", testBase)
	rec.MarkQuizWrong("c", "banana", testBase)

	result := rec.Accuracy()
	if result != 25 {
		t.Errorf("Accuracy() = %v, want 25", result)
	}
	if !rec.IsWeak() {
		t.Error("1 correct out of 4 attempts should be weak")
	}
}

func TestIsWeakBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		wrong    int
		expected bool
	}{
		{"no attempts", 0, 0, false},
		{"two attempts all wrong", 0, 2, false},
		{"three attempts all wrong", 0, 3, true},
		{"exactly 60 percent is not weak", 3, 2, false},
		{"just under 60 percent", 1, 2, true},
		{"high accuracy", 9, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewWordRecord("banana", testBase)
			for i := 0; i < tt.correct; i++ {
				rec.MarkQuizCorrect(testBase)
			}
			for i := 0; i < tt.wrong; i++ {
				rec.MarkQuizWrong("x", "banana", testBase)
			}

			result := rec.IsWeak()
			if result != tt.expected {
				t.Errorf("IsWeak() with %d correct / %d wrong = %v, want %v",
					tt.correct, tt.wrong, result, tt.expected)
			}
		})
	}
}

func TestWordRecordClone(t *testing.T) {
	rec := NewWordRecord("banana", testBase)
	rec.MarkQuizWrong("x", "banana", testBase)

	clone := rec.Clone()
	clone.MarkQuizWrong("y", "banana", testBase.Add(time.Minute))

	if len(rec.WrongHistory) != 1 {
		t.Errorf("original WrongHistory length = %v, want 1", len(rec.WrongHistory))
	}
	if rec.QuizAttempts != 1 {
		t.Errorf("original QuizAttempts = %v, want 1", rec.QuizAttempts)
	}
}
