// Package autocomplete implements suggestion filtering and the
// keyboard interaction model for a dropdown input.
package autocomplete

import "strings"

const (
	emptyQueryLimit = 10
	matchLimit      = 20
)

// Filter returns the suggestions for a query. An empty query shows the
// first ten options; otherwise up to twenty case-insensitive substring
// matches, kept in source order.
func Filter(options []string, query string) []string {
	if query == "" {
		if len(options) > emptyQueryLimit {
			return options[:emptyQueryLimit]
		}

		return options
	}

	q := strings.ToLower(query)

	matches := make([]string, 0, matchLimit)

	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt), q) {
			matches = append(matches, opt)
			if len(matches) == matchLimit {
				break
			}
		}
	}

	return matches
}

// State tracks an open dropdown and its highlighted row.
type State struct {
	Suggestions []string
	Open        bool
	Highlighted int // -1 when nothing is highlighted
}

func NewState() *State {
	return &State{ //nolint:exhaustruct
		Highlighted: -1,
	}
}

// SetSuggestions replaces the suggestion list and resets the highlight.
func (s *State) SetSuggestions(suggestions []string) {
	s.Suggestions = suggestions
	s.Open = len(suggestions) > 0
	s.Highlighted = -1
}

// Down moves the highlight one row down, wrapping to the top.
func (s *State) Down() {
	if len(s.Suggestions) == 0 {
		return
	}

	s.Open = true
	s.Highlighted = (s.Highlighted + 1) % len(s.Suggestions)
}

// Up moves the highlight one row up, wrapping to the bottom.
func (s *State) Up() {
	if len(s.Suggestions) == 0 {
		return
	}

	s.Open = true

	if s.Highlighted <= 0 {
		s.Highlighted = len(s.Suggestions) - 1

		return
	}

	s.Highlighted--
}

// Enter commits the highlighted suggestion and closes the dropdown.
// With nothing highlighted it opens the dropdown instead, and the
// returned ok is false.
func (s *State) Enter() (string, bool) {
	if s.Highlighted < 0 || s.Highlighted >= len(s.Suggestions) {
		s.Open = len(s.Suggestions) > 0

		return "", false
	}

	choice := s.Suggestions[s.Highlighted]
	s.close()

	return choice, true
}

// Escape closes the dropdown without committing.
func (s *State) Escape() {
	s.close()
}

// ClickOutside closes the dropdown, same as Escape.
func (s *State) ClickOutside() {
	s.close()
}

func (s *State) close() {
	s.Open = false
	s.Highlighted = -1
}
