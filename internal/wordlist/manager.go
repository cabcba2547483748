// Package wordlist manages named word lists stored as JSON files on
// disk. Lists are import material for the review queue; deleting a
// list never touches scheduling or engagement records.
package wordlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/Barca0412/VocabMaster/internal/clock"
	"github.com/Barca0412/VocabMaster/internal/validation"
)

// ErrListNotFound means no saved list has the given name.
var ErrListNotFound = errors.New("wordlist: list not found")

const listExt = ".json"

// List is one named collection of words.
type List struct {
	Name      string    `json:"name"`
	Words     []string  `json:"words"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary describes a list without its words.
type Summary struct {
	Name      string    `json:"name"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
}

// Manager reads and writes lists under a single directory, one file
// per list.
type Manager struct {
	dir   string
	clock clock.Clock
}

func NewManager(dir string, clk clock.Clock) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create wordlist directory: %w", err)
	}
	return &Manager{dir: dir, clock: clk}, nil
}

// ParseWords splits free text into cleaned vocabulary words. Commas,
// semicolons, and any whitespace all separate words; entries are
// lowercased and deduplicated keeping first occurrence.
func ParseWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})

	seen := make(map[string]bool)
	var words []string
	for _, field := range fields {
		word, err := validation.NormalizeWord(field)
		if err != nil || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}
	return words
}

// Save writes a list with the given words, replacing any list of the
// same name. Words are cleaned the same way ParseWords cleans them.
func (m *Manager) Save(name string, words []string) (List, error) {
	if err := validation.ValidateListName(name); err != nil {
		return List{}, err
	}

	cleaned := ParseWords(strings.Join(words, "\n"))
	if len(cleaned) == 0 {
		return List{}, errors.New("no valid words found")
	}

	list := List{
		Name:      strings.TrimSpace(name),
		Words:     cleaned,
		CreatedAt: m.clock.Now(),
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return List{}, fmt.Errorf("failed to encode list: %w", err)
	}
	if err := os.WriteFile(m.path(list.Name), data, 0o644); err != nil {
		return List{}, fmt.Errorf("failed to write list: %w", err)
	}
	return list, nil
}

// ImportText parses free text and saves it as a named list.
func (m *Manager) ImportText(name, text string) (List, error) {
	return m.Save(name, ParseWords(text))
}

// ImportFile reads a text file and saves its words as a named list.
// An empty name defaults to the file's base name.
func (m *Manager) ImportFile(name, path string) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return List{}, fmt.Errorf("failed to read word file: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m.ImportText(name, string(data))
}

// Load returns the named list, or ErrListNotFound.
func (m *Manager) Load(name string) (List, error) {
	data, err := os.ReadFile(m.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return List{}, ErrListNotFound
		}
		return List{}, fmt.Errorf("failed to read list: %w", err)
	}

	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		return List{}, fmt.Errorf("failed to decode list %s: %w", name, err)
	}
	return list, nil
}

// Words returns the words of the named list.
func (m *Manager) Words(name string) ([]string, error) {
	list, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	return list.Words, nil
}

// Delete removes the named list file.
func (m *Manager) Delete(name string) error {
	err := os.Remove(m.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return ErrListNotFound
	}
	return err
}

// Exists reports whether a list with this name is on disk.
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.path(name))
	return err == nil
}

// Summaries describes every list on disk, sorted by name. Files that
// fail to parse are skipped with a warning.
func (m *Manager) Summaries() ([]Summary, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read wordlist directory: %w", err)
	}

	summaries := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), listExt) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(m.dir, entry.Name()))
		if err != nil {
			log.Printf("Warning: failed to read list file %s: %v", entry.Name(), err)
			continue
		}
		var list List
		if err := json.Unmarshal(data, &list); err != nil {
			log.Printf("Warning: failed to decode list file %s: %v", entry.Name(), err)
			continue
		}
		summaries = append(summaries, Summary{
			Name:      list.Name,
			WordCount: len(list.Words),
			CreatedAt: list.CreatedAt,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return summaries, nil
}

// Names returns the names of every list on disk, sorted.
func (m *Manager) Names() ([]string, error) {
	summaries, err := m.Summaries()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(summaries))
	for i, s := range summaries {
		names[i] = s.Name
	}
	return names, nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// path maps a list name to its file. Names differing only in case or
// punctuation share a file, which keeps look-ups forgiving.
func (m *Manager) path(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = unsafeFileChars.ReplaceAllString(base, "_")
	return filepath.Join(m.dir, base+listExt)
}
