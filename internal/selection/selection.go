// Package selection holds the ordered, deduplicated set of chosen airport
// codes for one search field. Each field (origin, destination) owns its own
// Set; the same code may live in both fields at once.
package selection

import (
	"regexp"
	"strings"
)

var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Set preserves insertion order and answers membership in O(1). The zero
// value is not usable; call New.
type Set struct {
	codes  []string
	member map[string]struct{}
}

// New returns an empty selection set.
func New() *Set {
	return &Set{member: make(map[string]struct{})}
}

// Add normalizes code to uppercase/trimmed and appends it. Codes that are
// not exactly 3 letters, or already present, are ignored. Membership in the
// airport index is deliberately not required: manually typed codes are
// accepted even when unknown.
func (s *Set) Add(code string) bool {
	c := strings.ToUpper(strings.TrimSpace(code))
	if !codePattern.MatchString(c) {
		return false
	}
	if _, ok := s.member[c]; ok {
		return false
	}
	s.member[c] = struct{}{}
	s.codes = append(s.codes, c)
	return true
}

// Remove deletes code if present; a no-op otherwise. The insertion order of
// the remaining codes is preserved.
func (s *Set) Remove(code string) bool {
	c := strings.ToUpper(strings.TrimSpace(code))
	if _, ok := s.member[c]; !ok {
		return false
	}
	delete(s.member, c)
	for i, existing := range s.codes {
		if existing == c {
			s.codes = append(s.codes[:i], s.codes[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether code is in the set.
func (s *Set) Contains(code string) bool {
	_, ok := s.member[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Codes returns the selected codes in insertion order. The slice is a copy.
func (s *Set) Codes() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// Len returns the number of selected codes.
func (s *Set) Len() int {
	return len(s.codes)
}
