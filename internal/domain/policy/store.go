package policy

import (
	"slices"
	"strings"
)

// Store holds the read-only term lists consulted by the validators.
// It is built once at start-up and safe for concurrent use.
type Store struct {
	profaneTerms      []string
	breachedPasswords []string
}

// NewStore builds a Store. Duplicate and blank entries are dropped;
// a blank term would otherwise match every input.
func NewStore(profaneTerms, breachedPasswords []string) *Store {
	return &Store{
		profaneTerms:      compactTerms(profaneTerms),
		breachedPasswords: compactTerms(breachedPasswords),
	}
}

// ContainsProfaneTerm reports whether any forbidden term occurs inside str.
func (s *Store) ContainsProfaneTerm(str string) bool {
	return containsAny(str, s.profaneTerms)
}

// ContainsBreachedPassword reports whether any breached password occurs inside str.
// Matching is by substring and case-sensitive.
func (s *Store) ContainsBreachedPassword(str string) bool {
	return containsAny(str, s.breachedPasswords)
}

// ProfaneTermCount returns the number of distinct forbidden terms.
func (s *Store) ProfaneTermCount() int {
	return len(s.profaneTerms)
}

// BreachedPasswordCount returns the number of distinct breached passwords.
func (s *Store) BreachedPasswordCount() int {
	return len(s.breachedPasswords)
}

func containsAny(str string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(str, term) {
			return true
		}
	}

	return false
}

func compactTerms(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}
	slices.Sort(out)

	return out
}
