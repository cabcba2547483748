package wordlist

import (
	"fmt"
	"log"
)

// builtinLists ship with the application so a fresh install has
// something to study before the user imports their own material.
var builtinLists = []struct {
	name  string
	words []string
}{
	{
		name: "Everyday Basics",
		words: []string{
			"morning", "evening", "breakfast", "lunch", "dinner", "water",
			"coffee", "house", "street", "market", "school", "office",
			"friend", "family", "weather", "sunny", "rainy", "window",
			"door", "table", "chair", "money", "ticket", "train",
			"station", "airport", "holiday", "weekend", "birthday", "present",
		},
	},
	{
		name: "Academic Starters",
		words: []string{
			"analyze", "approach", "assume", "benefit", "concept", "consist",
			"context", "create", "define", "derive", "distribute", "environment",
			"establish", "estimate", "evident", "factor", "function", "identify",
			"indicate", "interpret", "involve", "method", "occur", "percent",
			"principle", "proceed", "require", "research", "significant", "theory",
		},
	},
}

// SeedBuiltinLists writes the bundled starter lists, skipping any the
// user already has. Deleting a seeded list sticks until the next
// seeding run, so seeding stays opt-in via configuration.
func (m *Manager) SeedBuiltinLists() error {
	for _, seed := range builtinLists {
		if m.Exists(seed.name) {
			log.Printf("Built-in list '%s' already exists, skipping seed", seed.name)
			continue
		}

		log.Printf("Creating built-in list '%s' with %d words...", seed.name, len(seed.words))
		if _, err := m.Save(seed.name, seed.words); err != nil {
			return fmt.Errorf("failed to seed list %s: %w", seed.name, err)
		}
	}
	return nil
}
