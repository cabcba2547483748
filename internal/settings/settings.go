// Package settings persists user preferences as a single JSON file.
// Unknown or missing fields fall back to defaults, so files written by
// older versions keep working.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/Barca0412/VocabMaster/internal/validation"
)

// LearningStats accumulates across study sessions.
type LearningStats struct {
	TotalWordsLearned int `json:"total_words_learned"`
	StudySessions     int `json:"study_sessions"`
	TotalStudyTime    int `json:"total_study_time"`
}

// Settings holds every user preference.
type Settings struct {
	DisplayInterval   int           `json:"display_interval"`
	Theme             string        `json:"theme"`
	ShowPhonetic      bool          `json:"show_phonetic"`
	ShowDefinitions   bool          `json:"show_definitions"`
	ShowExamples      bool          `json:"show_examples"`
	CurrentWordlist   *string       `json:"current_wordlist"`
	AutoStartPlayback bool          `json:"auto_start_playback"`
	AlwaysOnTop       bool          `json:"always_on_top"`
	LearningGoal      string        `json:"learning_goal"`
	LearningStats     LearningStats `json:"learning_stats"`
}

// Defaults returns the settings of a fresh install.
func Defaults() Settings {
	return Settings{
		DisplayInterval: 10,
		Theme:           "light",
		ShowPhonetic:    true,
		ShowDefinitions: true,
		ShowExamples:    true,
		AlwaysOnTop:     true,
	}
}

func validate(s Settings) error {
	if s.DisplayInterval < 1 {
		return validation.ValidationError{Field: "display_interval", Message: "must be at least 1 second"}
	}
	if s.Theme != "light" && s.Theme != "dark" {
		return validation.ValidationError{Field: "theme", Message: "must be light or dark"}
	}
	return nil
}

// Store keeps the current settings in memory and writes the file on
// every change.
type Store struct {
	path string

	mu  sync.Mutex
	cur Settings
}

// NewStore loads settings from path. A missing file means defaults; a
// corrupt file is demoted to a warning and replaced on the next save.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}

	s := &Store{path: path, cur: Defaults()}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: failed to read settings file: %v", err)
		}
		return s, nil
	}

	// Decoding over the defaults keeps values the file does not set.
	loaded := Defaults()
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("Warning: settings file is corrupt, using defaults: %v", err)
		return s, nil
	}
	if err := validate(loaded); err != nil {
		log.Printf("Warning: settings file is invalid, using defaults: %v", err)
		return s, nil
	}

	s.cur = loaded
	return s, nil
}

// Get returns a copy of the current settings.
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySettings(s.cur)
}

// Update applies fn to the current settings and saves the result. fn
// runs under the store lock; changes that fail validation are
// discarded.
func (s *Store) Update(fn func(*Settings)) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := copySettings(s.cur)
	fn(&next)
	if err := validate(next); err != nil {
		return copySettings(s.cur), err
	}

	s.cur = next
	return copySettings(s.cur), s.save()
}

// Patch merges a partial JSON document into the current settings and
// saves. Fields missing from the document keep their values.
func (s *Store) Patch(raw []byte) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := copySettings(s.cur)
	if err := json.Unmarshal(raw, &next); err != nil {
		return copySettings(s.cur), validation.ValidationError{Field: "settings", Message: "invalid JSON body"}
	}
	if err := validate(next); err != nil {
		return copySettings(s.cur), err
	}

	s.cur = next
	return copySettings(s.cur), s.save()
}

// AddStudySession folds one finished session into the learning stats.
func (s *Store) AddStudySession(wordsLearned, seconds int) (Settings, error) {
	return s.Update(func(st *Settings) {
		st.LearningStats.StudySessions++
		st.LearningStats.TotalWordsLearned += wordsLearned
		st.LearningStats.TotalStudyTime += seconds
	})
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cur, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func copySettings(s Settings) Settings {
	out := s
	if s.CurrentWordlist != nil {
		v := *s.CurrentWordlist
		out.CurrentWordlist = &v
	}
	return out
}
