package models

import (
	"testing"
	"time"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelNew, "NEW"},
		{LevelLearning, "LEARNING"},
		{LevelYoung, "YOUNG"},
		{LevelMature, "MATURE"},
		{LevelMastered, "MASTERED"},
		{LevelPerfect, "PERFECT"},
		{Level(42), "Level(42)"},
		{Level(-1), "Level(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.level.String()
			if result != tt.expected {
				t.Errorf("String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	for l := LevelNew; l <= LevelPerfect; l++ {
		parsed, err := ParseLevel(l.String())
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned error: %v", l.String(), err)
		}
		if parsed != l {
			t.Errorf("ParseLevel(%q) = %v, want %v", l.String(), parsed, l)
		}
	}

	if _, err := ParseLevel("legendary"); err == nil {
		t.Error("ParseLevel should reject unknown names")
	}
}

func TestLevelPromoteCapsAtPerfect(t *testing.T) {
	tests := []struct {
		level    Level
		expected Level
	}{
		{LevelNew, LevelLearning},
		{LevelLearning, LevelYoung},
		{LevelYoung, LevelMature},
		{LevelMature, LevelMastered},
		{LevelMastered, LevelPerfect},
		{LevelPerfect, LevelPerfect},
	}

	for _, tt := range tests {
		result := tt.level.Promote()
		if result != tt.expected {
			t.Errorf("%v.Promote() = %v, want %v", tt.level, result, tt.expected)
		}
	}
}

func TestLevelDemoteFloorsAtLearning(t *testing.T) {
	tests := []struct {
		level    Level
		expected Level
	}{
		{LevelNew, LevelLearning},
		{LevelLearning, LevelLearning},
		{LevelYoung, LevelLearning},
		{LevelMature, LevelYoung},
		{LevelMastered, LevelMature},
		{LevelPerfect, LevelMastered},
	}

	for _, tt := range tests {
		result := tt.level.Demote()
		if result != tt.expected {
			t.Errorf("%v.Demote() = %v, want %v", tt.level, result, tt.expected)
		}
	}
}

func TestLevelInterval(t *testing.T) {
	tests := []struct {
		level    Level
		expected time.Duration
	}{
		{LevelNew, 5 * time.Minute},
		{LevelLearning, 30 * time.Minute},
		{LevelYoung, 24 * time.Hour},
		{LevelMature, 72 * time.Hour},
		{LevelMastered, 7 * 24 * time.Hour},
		{LevelPerfect, 30 * 24 * time.Hour},
		{Level(99), 24 * time.Hour},
	}

	for _, tt := range tests {
		result := tt.level.Interval()
		if result != tt.expected {
			t.Errorf("%v.Interval() = %v, want %v", tt.level, result, tt.expected)
		}
	}
}

func TestLevelMasteryPercent(t *testing.T) {
	tests := []struct {
		level    Level
		expected int
	}{
		{LevelNew, 0},
		{LevelLearning, 20},
		{LevelYoung, 40},
		{LevelMature, 60},
		{LevelMastered, 80},
		{LevelPerfect, 100},
	}

	for _, tt := range tests {
		result := tt.level.MasteryPercent()
		if result != tt.expected {
			t.Errorf("%v.MasteryPercent() = %v, want %v", tt.level, result, tt.expected)
		}
	}
}

func TestOutcomeIsValid(t *testing.T) {
	if !OutcomeCorrect.IsValid() || !OutcomeWrong.IsValid() {
		t.Error("defined outcomes should be valid")
	}
	if Outcome("maybe").IsValid() {
		t.Error("unknown outcome should be invalid")
	}
}
