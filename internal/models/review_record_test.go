package models

import (
	"encoding/json"
	"testing"
	"time"
)

var testBase = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewReviewRecordStartsUnscheduled(t *testing.T) {
	rec := NewReviewRecord("apple", testBase)

	if rec.Level != LevelNew {
		t.Errorf("Level = %v, want %v", rec.Level, LevelNew)
	}
	if rec.LastReview != nil || rec.NextReview != nil {
		t.Error("fresh record should have no review timestamps")
	}
	if !rec.IsDue(testBase) {
		t.Error("fresh record should be due immediately")
	}
	if rec.CreatedAt != testBase {
		t.Errorf("CreatedAt = %v, want %v", rec.CreatedAt, testBase)
	}
}

func TestApplyCorrectPromotesAfterThreeInARow(t *testing.T) {
	rec := NewReviewRecord("apple", testBase)

	rec.ApplyCorrect(testBase)
	rec.ApplyCorrect(testBase.Add(1 * time.Minute))
	if rec.Level != LevelNew {
		t.Fatalf("Level after 2 correct = %v, want %v", rec.Level, LevelNew)
	}
	if rec.Streak != 2 {
		t.Fatalf("Streak after 2 correct = %v, want 2", rec.Streak)
	}

	rec.ApplyCorrect(testBase.Add(2 * time.Minute))
	if rec.Level != LevelLearning {
		t.Errorf("Level after 3 correct = %v, want %v", rec.Level, LevelLearning)
	}
	if rec.Streak != 0 {
		t.Errorf("Streak after promotion = %v, want 0", rec.Streak)
	}

	// A fourth correct answer starts a new streak, no second promotion.
	rec.ApplyCorrect(testBase.Add(3 * time.Minute))
	if rec.Level != LevelLearning {
		t.Errorf("Level after 4th correct = %v, want %v", rec.Level, LevelLearning)
	}
	if rec.Streak != 1 {
		t.Errorf("Streak after 4th correct = %v, want 1", rec.Streak)
	}
}

func TestApplyCorrectSchedulesFromReachedTier(t *testing.T) {
	rec := NewReviewRecord("apple", testBase)
	rec.Level = LevelYoung
	rec.Streak = 2

	now := testBase.Add(10 * time.Minute)
	rec.ApplyCorrect(now)

	if rec.Level != LevelMature {
		t.Fatalf("Level = %v, want %v", rec.Level, LevelMature)
	}
	expected := now.Add(LevelMature.Interval())
	if rec.NextReview == nil || !rec.NextReview.Equal(expected) {
		t.Errorf("NextReview = %v, want %v", rec.NextReview, expected)
	}
}

func TestStreakResetsAtCeiling(t *testing.T) {
	rec := NewReviewRecord("apple", testBase)
	rec.Level = LevelPerfect
	rec.Streak = 2

	rec.ApplyCorrect(testBase)

	if rec.Level != LevelPerfect {
		t.Errorf("Level = %v, want %v", rec.Level, LevelPerfect)
	}
	if rec.Streak != 0 {
		t.Errorf("Streak = %v, want 0 even with no tier change", rec.Streak)
	}
}

func TestApplyWrongDemotesAndForcesRetry(t *testing.T) {
	tests := []struct {
		name     string
		start    Level
		expected Level
	}{
		{"new goes up to learning", LevelNew, LevelLearning},
		{"learning stays at floor", LevelLearning, LevelLearning},
		{"perfect drops one", LevelPerfect, LevelMastered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewReviewRecord("apple", testBase)
			rec.Level = tt.start
			rec.Streak = 2

			now := testBase.Add(time.Hour)
			rec.ApplyWrong(now)

			if rec.Level != tt.expected {
				t.Errorf("Level = %v, want %v", rec.Level, tt.expected)
			}
			if rec.Streak != 0 {
				t.Errorf("Streak = %v, want 0", rec.Streak)
			}
			if rec.WrongTotal != 1 {
				t.Errorf("WrongTotal = %v, want 1", rec.WrongTotal)
			}
			expected := now.Add(5 * time.Minute)
			if rec.NextReview == nil || !rec.NextReview.Equal(expected) {
				t.Errorf("NextReview = %v, want %v", rec.NextReview, expected)
			}
		})
	}
}

// The core promotion/demotion walkthrough: three quick corrects promote
// apple to LEARNING with a 30 minute wait, a later wrong answer keeps it
// at the LEARNING floor and pulls the next review in to five minutes.
func TestAppleScenario(t *testing.T) {
	rec := NewReviewRecord("apple", testBase)

	rec.ApplyCorrect(testBase)
	rec.ApplyCorrect(testBase.Add(1 * time.Minute))
	t2 := testBase.Add(2 * time.Minute)
	rec.ApplyCorrect(t2)

	if rec.Level != LevelLearning {
		t.Fatalf("Level = %v, want %v", rec.Level, LevelLearning)
	}
	if rec.Streak != 0 {
		t.Fatalf("Streak = %v, want 0", rec.Streak)
	}
	expected := t2.Add(30 * time.Minute)
	if rec.NextReview == nil || !rec.NextReview.Equal(expected) {
		t.Fatalf("NextReview = %v, want %v", rec.NextReview, expected)
	}

	wrongAt := t2.Add(10 * time.Minute)
	rec.ApplyWrong(wrongAt)

	if rec.Level != LevelLearning {
		t.Errorf("Level after wrong = %v, want %v", rec.Level, LevelLearning)
	}
	expected = wrongAt.Add(5 * time.Minute)
	if rec.NextReview == nil || !rec.NextReview.Equal(expected) {
		t.Errorf("NextReview after wrong = %v, want %v", rec.NextReview, expected)
	}
}

func TestLevelBoundsAfterAnyOutcome(t *testing.T) {
	rec := NewReviewRecord("apple", testBase)
	outcomes := []bool{true, false, true, true, true, false, false, false, true, false}

	now := testBase
	for i, correct := range outcomes {
		now = now.Add(time.Minute)
		if correct {
			rec.ApplyCorrect(now)
		} else {
			rec.ApplyWrong(now)
		}
		if rec.Level < LevelLearning || rec.Level > LevelPerfect {
			t.Fatalf("after outcome %d: Level = %v, outside [LEARNING, PERFECT]", i+1, rec.Level)
		}
	}

	if len(rec.History) != len(outcomes) {
		t.Errorf("History length = %v, want %v", len(rec.History), len(outcomes))
	}
}

func TestHistoryRecordsTierNameAfterTransition(t *testing.T) {
	rec := NewReviewRecord("apple", testBase)

	rec.ApplyCorrect(testBase)
	rec.ApplyWrong(testBase.Add(time.Minute))

	if len(rec.History) != 2 {
		t.Fatalf("History length = %v, want 2", len(rec.History))
	}
	if rec.History[0].Result != OutcomeCorrect || rec.History[0].Level != "NEW" {
		t.Errorf("first entry = %+v, want correct at NEW", rec.History[0])
	}
	if rec.History[1].Result != OutcomeWrong || rec.History[1].Level != "LEARNING" {
		t.Errorf("second entry = %+v, want wrong at LEARNING", rec.History[1])
	}
}

func TestReviewRecordJSONLayout(t *testing.T) {
	rec := NewReviewRecord("apple", testBase)
	rec.ApplyCorrect(testBase)

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if level, ok := doc["level"].(float64); !ok || level != 0 {
		t.Errorf("level = %v, want bare integer 0", doc["level"])
	}
	if _, ok := doc["correct_count"]; !ok {
		t.Error("streak should persist as correct_count")
	}
	if doc["next_review"] == nil {
		t.Error("next_review should be set after an outcome")
	}
	history, ok := doc["review_history"].([]any)
	if !ok || len(history) != 1 {
		t.Fatalf("review_history = %v, want one entry", doc["review_history"])
	}
	entry := history[0].(map[string]any)
	if entry["result"] != "correct" || entry["level"] != "NEW" {
		t.Errorf("history entry = %v, want result correct at level NEW", entry)
	}

	fresh := NewReviewRecord("pear", testBase)
	data, err = json.Marshal(fresh)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	doc = nil
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if doc["last_review"] != nil || doc["next_review"] != nil {
		t.Error("fresh record should persist null review timestamps")
	}
	if _, ok := doc["review_history"].([]any); !ok {
		t.Error("review_history should persist as an empty array, not null")
	}
}

func TestReviewRecordClone(t *testing.T) {
	rec := NewReviewRecord("apple", testBase)
	rec.ApplyCorrect(testBase)

	clone := rec.Clone()
	clone.ApplyWrong(testBase.Add(time.Minute))

	if rec.WrongTotal != 0 {
		t.Error("mutating the clone should not touch the original")
	}
	if len(rec.History) != 1 {
		t.Errorf("original History length = %v, want 1", len(rec.History))
	}
	if rec.NextReview.Equal(*clone.NextReview) {
		t.Error("clone should carry its own timestamp pointers")
	}
}
