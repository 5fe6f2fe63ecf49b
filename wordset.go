package termgate

import (
	"sort"
	"strings"
)

// WordSet is an immutable, case-insensitive set of words. The zero value is
// an empty set.
type WordSet struct {
	m map[string]struct{}
}

// NewWordSet returns a set containing words. Blank entries are ignored.
func NewWordSet(words ...string) WordSet {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		m[w] = struct{}{}
	}
	return WordSet{m: m}
}

// Has reports whether w is in the set, ignoring case.
func (s WordSet) Has(w string) bool {
	_, ok := s.m[strings.ToLower(w)]
	return ok
}

// Len returns the number of words in the set.
func (s WordSet) Len() int {
	return len(s.m)
}

// Words returns the set's words in sorted order.
func (s WordSet) Words() []string {
	words := make([]string, 0, len(s.m))
	for w := range s.m {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Union returns a new set containing the words of s and other.
func (s WordSet) Union(other WordSet) WordSet {
	words := append(s.Words(), other.Words()...)
	return NewWordSet(words...)
}
