package validation

import (
	"fmt"
	"strings"
)

// MaxWordLength bounds a single vocabulary key. Anything longer is a
// caller bug, not a word.
const MaxWordLength = 100

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NormalizeWord canonicalizes a vocabulary key: trimmed and lowercased.
// Both stores key records by this form, so normalization happens once
// here at the boundary and never inside a store.
func NormalizeWord(raw string) (string, error) {
	word := strings.ToLower(strings.TrimSpace(raw))
	if word == "" {
		return "", ValidationError{Field: "word", Message: "word is required"}
	}
	if len(word) > MaxWordLength {
		return "", ValidationError{Field: "word", Message: "word is too long"}
	}
	return word, nil
}

// ValidateListName checks a word-list name supplied by the user.
func ValidateListName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) > 60 {
		return ValidationError{Field: "name", Message: "name must be at most 60 characters"}
	}
	return nil
}
