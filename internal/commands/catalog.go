package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
)

// ErrInvalidSuggestion is returned when a catalog entry breaks a catalog rule.
var ErrInvalidSuggestion = errors.New("invalid suggestion")

// Catalog is the ordered, immutable list of palette suggestions.
// Order matters: the matcher picks the first entry whose prefix matches.
type Catalog struct {
	suggestions []Suggestion
}

// NewCatalog validates the suggestions and returns a catalog holding a copy.
// Prefixes must start with "/", contain no whitespace and be unique.
// An empty catalog is valid.
func NewCatalog(suggestions []Suggestion) (*Catalog, error) {
	seen := make(map[string]int, len(suggestions))
	for i, s := range suggestions {
		if s.Label == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty label", ErrInvalidSuggestion, i)
		}
		if !strings.HasPrefix(s.Prefix, "/") {
			return nil, fmt.Errorf("%w: prefix %q must start with \"/\"", ErrInvalidSuggestion, s.Prefix)
		}
		if strings.ContainsFunc(s.Prefix, unicode.IsSpace) {
			return nil, fmt.Errorf("%w: prefix %q contains whitespace", ErrInvalidSuggestion, s.Prefix)
		}
		if j, dup := seen[s.Prefix]; dup {
			return nil, fmt.Errorf("%w: prefix %q used by entries %d and %d", ErrInvalidSuggestion, s.Prefix, j, i)
		}
		seen[s.Prefix] = i
	}

	items := make([]Suggestion, len(suggestions))
	copy(items, suggestions)
	return &Catalog{suggestions: items}, nil
}

// DefaultSuggestions returns the built-in command set.
func DefaultSuggestions() []Suggestion {
	return []Suggestion{
		{
			Label:       "Assistant",
			Prefix:      "/assist",
			Icon:        IconMonitor,
			Description: "Ask the assistant",
		},
		{
			Label:       "Reasoning",
			Prefix:      "/reason",
			Icon:        IconBrain,
			Description: "Think it through step by step",
		},
	}
}

// Default returns a catalog with the built-in command set.
func Default() *Catalog {
	// Built-in entries are valid by construction
	c, err := NewCatalog(DefaultSuggestions())
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of suggestions.
func (c *Catalog) Len() int {
	return len(c.suggestions)
}

// IsEmpty returns true if the catalog has no suggestions.
func (c *Catalog) IsEmpty() bool {
	return len(c.suggestions) == 0
}

// At returns the suggestion at index i.
func (c *Catalog) At(i int) (Suggestion, bool) {
	if i < 0 || i >= len(c.suggestions) {
		return Suggestion{}, false
	}
	return c.suggestions[i], true
}

// All returns a copy of the suggestions in declared order.
func (c *Catalog) All() []Suggestion {
	items := make([]Suggestion, len(c.suggestions))
	copy(items, c.suggestions)
	return items
}

// Get returns the suggestion whose prefix equals prefix exactly.
func (c *Catalog) Get(prefix string) (Suggestion, bool) {
	for _, s := range c.suggestions {
		if s.Prefix == prefix {
			return s, true
		}
	}
	return Suggestion{}, false
}

// IndexWithPrefix returns the index of the first suggestion whose prefix
// starts with text, or -1.
func (c *Catalog) IndexWithPrefix(text string) int {
	for i, s := range c.suggestions {
		if strings.HasPrefix(s.Prefix, text) {
			return i
		}
	}
	return -1
}

// Search returns suggestions matching query using fuzzy search over prefix
// and label, best match first. An empty query returns everything in order.
func (c *Catalog) Search(query string) []Suggestion {
	if query == "" {
		return c.All()
	}

	candidates := make([]string, len(c.suggestions))
	for i, s := range c.suggestions {
		candidates[i] = s.Prefix + " " + s.Label
	}

	matches := fuzzy.Find(query, candidates)

	result := make([]Suggestion, len(matches))
	for i, match := range matches {
		result[i] = c.suggestions[match.Index]
	}
	return result
}
