package models

import (
	"fmt"
	"time"
)

// Level is the mastery tier of a reviewed word, ordered from NEW to
// PERFECT. The tier decides how long the word waits before its next
// review.
//
// Level serializes as a bare integer in snapshots; review history
// entries carry the tier name instead (see ReviewEvent).
type Level int

const (
	LevelNew      Level = iota // never answered
	LevelLearning              // short-interval relearning
	LevelYoung
	LevelMature
	LevelMastered
	LevelPerfect
)

var levelNames = [...]string{
	LevelNew:      "NEW",
	LevelLearning: "LEARNING",
	LevelYoung:    "YOUNG",
	LevelMature:   "MATURE",
	LevelMastered: "MASTERED",
	LevelPerfect:  "PERFECT",
}

var levelByName = map[string]Level{
	"NEW":      LevelNew,
	"LEARNING": LevelLearning,
	"YOUNG":    LevelYoung,
	"MATURE":   LevelMature,
	"MASTERED": LevelMastered,
	"PERFECT":  LevelPerfect,
}

// Review intervals per tier, following the Ebbinghaus forgetting curve:
// 5 minutes, 30 minutes, 1 day, 3 days, 7 days, 30 days.
var levelIntervals = [...]time.Duration{
	LevelNew:      5 * time.Minute,
	LevelLearning: 30 * time.Minute,
	LevelYoung:    24 * time.Hour,
	LevelMature:   3 * 24 * time.Hour,
	LevelMastered: 7 * 24 * time.Hour,
	LevelPerfect:  30 * 24 * time.Hour,
}

// WrongRetryInterval is how soon a word comes back after a wrong
// answer, regardless of tier.
const WrongRetryInterval = 5 * time.Minute

// Compile-time interface check.
var _ fmt.Stringer = Level(0)

// IsValid reports whether l is one of the defined tiers.
func (l Level) IsValid() bool {
	return l >= LevelNew && l <= LevelPerfect
}

// String returns the tier name ("NEW" ... "PERFECT"). Invalid values
// render as "Level(n)".
func (l Level) String() string {
	if l.IsValid() {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel maps a tier name back to its Level.
func ParseLevel(name string) (Level, error) {
	l, ok := levelByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
	return l, nil
}

// Promote returns the next tier up, capped at PERFECT.
func (l Level) Promote() Level {
	if l < LevelPerfect {
		return l + 1
	}
	return LevelPerfect
}

// Demote returns the tier after a wrong answer: one step down, floored
// at LEARNING. NEW demotes up to LEARNING, since a wrong answer still
// counts as a first outcome.
func (l Level) Demote() Level {
	if l > LevelLearning {
		return l - 1
	}
	return LevelLearning
}

// Interval returns how long a word at this tier waits before its next
// scheduled review. Out-of-range values fall back to one day.
func (l Level) Interval() time.Duration {
	if l.IsValid() {
		return levelIntervals[l]
	}
	return 24 * time.Hour
}

// MasteryPercent maps the tier onto 0-100.
func (l Level) MasteryPercent() int {
	return int(l) * 100 / int(LevelPerfect)
}
