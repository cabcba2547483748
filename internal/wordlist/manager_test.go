package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir(), fixedClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return m
}

func TestParseWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "comma separated",
			text:     "apple, banana, cherry",
			expected: []string{"apple", "banana", "cherry"},
		},
		{
			name:     "mixed separators",
			text:     "apple banana;cherry\ndate,\telderberry",
			expected: []string{"apple", "banana", "cherry", "date", "elderberry"},
		},
		{
			name:     "lowercases and dedupes keeping first occurrence",
			text:     "Apple, BANANA, apple, banana",
			expected: []string{"apple", "banana"},
		},
		{
			name:     "blank input",
			text:     "  ,,  \n\t ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseWords(tt.text)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ParseWords(%q) = %v, want %v", tt.text, result, tt.expected)
			}
		})
	}
}

func TestSaveAndLoadList(t *testing.T) {
	m := newTestManager(t)

	saved, err := m.Save("Travel Words", []string{"Airport", "ticket", "airport"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if len(saved.Words) != 2 {
		t.Errorf("saved words = %v, want deduplicated pair", saved.Words)
	}

	loaded, err := m.Load("Travel Words")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Name != "Travel Words" {
		t.Errorf("loaded name = %q, want %q", loaded.Name, "Travel Words")
	}
	expected := []string{"airport", "ticket"}
	if !reflect.DeepEqual(loaded.Words, expected) {
		t.Errorf("loaded words = %v, want %v", loaded.Words, expected)
	}

	// Case and punctuation differences resolve to the same list.
	if _, err := m.Load("travel words"); err != nil {
		t.Errorf("Load(lowercase name) error = %v, want same list", err)
	}
}

func TestSaveRejectsEmptyList(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Save("Empty", []string{"  ", ""}); err == nil {
		t.Error("Save() with no usable words: expected error, got nil")
	}
	if _, err := m.Save("", []string{"apple"}); err == nil {
		t.Error("Save() with blank name: expected error, got nil")
	}
}

func TestImportFile(t *testing.T) {
	m := newTestManager(t)

	path := filepath.Join(t.TempDir(), "kitchen.txt")
	if err := os.WriteFile(path, []byte("Spoon, fork\nknife"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	list, err := m.ImportFile("", path)
	if err != nil {
		t.Fatalf("ImportFile() error = %v", err)
	}
	if list.Name != "kitchen" {
		t.Errorf("list name = %q, want file base name %q", list.Name, "kitchen")
	}
	if len(list.Words) != 3 {
		t.Errorf("list words = %v, want 3 entries", list.Words)
	}
}

func TestDeleteList(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Save("Doomed", []string{"apple"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := m.Delete("Doomed"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := m.Load("Doomed"); !errors.Is(err, ErrListNotFound) {
		t.Errorf("Load() after delete error = %v, want ErrListNotFound", err)
	}
	if err := m.Delete("Doomed"); !errors.Is(err, ErrListNotFound) {
		t.Errorf("second Delete() error = %v, want ErrListNotFound", err)
	}
}

func TestSummariesSorted(t *testing.T) {
	m := newTestManager(t)

	for _, name := range []string{"Zoo Animals", "Breakfast", "Music"} {
		if _, err := m.Save(name, []string{"apple", "banana"}); err != nil {
			t.Fatalf("Save(%q) error = %v", name, err)
		}
	}

	summaries, err := m.Summaries()
	if err != nil {
		t.Fatalf("Summaries() error = %v", err)
	}

	names := make([]string, len(summaries))
	for i, s := range summaries {
		names[i] = s.Name
		if s.WordCount != 2 {
			t.Errorf("summary %q word count = %d, want 2", s.Name, s.WordCount)
		}
	}
	expected := []string{"Breakfast", "Music", "Zoo Animals"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("summary names = %v, want %v", names, expected)
	}
}

func TestSeedBuiltinListsIdempotent(t *testing.T) {
	m := newTestManager(t)

	if err := m.SeedBuiltinLists(); err != nil {
		t.Fatalf("SeedBuiltinLists() error = %v", err)
	}

	names, err := m.Names()
	if err != nil {
		t.Fatalf("Names() error = %v", err)
	}
	if len(names) != len(builtinLists) {
		t.Fatalf("Names() = %v, want %d seeded lists", names, len(builtinLists))
	}

	// Replace one list, then reseed: the user's version must survive.
	if _, err := m.Save("Everyday Basics", []string{"tea"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := m.SeedBuiltinLists(); err != nil {
		t.Fatalf("second SeedBuiltinLists() error = %v", err)
	}

	words, err := m.Words("Everyday Basics")
	if err != nil {
		t.Fatalf("Words() error = %v", err)
	}
	if !reflect.DeepEqual(words, []string{"tea"}) {
		t.Errorf("reseed overwrote user list: words = %v", words)
	}
}
