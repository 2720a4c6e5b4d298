// SPDX-License-Identifier: MIT

package words

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"unicode/utf8"
)

// Set is a vocabulary of unique words. The zero value is not usable; use NewSet.
type Set map[string]struct{}

// NewSet returns a Set holding ws. Duplicates collapse.
func NewSet(ws ...string) Set {
	s := make(Set, len(ws))
	for _, w := range ws {
		s[w] = struct{}{}
	}

	return s
}

// Add inserts w into the set.
func (s Set) Add(w string) { s[w] = struct{}{} }

// Has reports whether w is in the set.
func (s Set) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Len returns the number of words.
func (s Set) Len() int { return len(s) }

// Merge adds every word of other into s.
func (s Set) Merge(other Set) {
	for w := range other {
		s[w] = struct{}{}
	}
}

// Sorted returns the words in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// Invalid returns the words that are not valid UTF-8, sorted.
func (s Set) Invalid() []string {
	var out []string
	for w := range s {
		if !Valid(w) {
			out = append(out, w)
		}
	}
	sort.Strings(out)

	return out
}

// OfLength returns the words with exactly n runes, sorted.
func (s Set) OfLength(n int) []string {
	var out []string
	for w := range s {
		if Len(w) == n {
			out = append(out, w)
		}
	}
	sort.Strings(out)

	return out
}

// Len returns the number of characters (runes) in w.
func Len(w string) int { return utf8.RuneCountInString(w) }

// Alphabet returns every distinct rune appearing in the vocabulary's valid
// UTF-8 words, sorted ascending. An empty set yields an empty (nil) alphabet.
// Complexity: O(total runes + A log A).
func Alphabet(s Set) []rune {
	seen := make(map[rune]struct{})
	for w := range s {
		if !Valid(w) {
			continue
		}
		for _, r := range w {
			seen[r] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Valid reports whether w is well-formed UTF-8. Only valid words take part
// in the word graph.
func Valid(w string) bool { return utf8.ValidString(w) }

// OneApart reports whether a and b have equal length and differ in exactly
// one character position. A word is never one apart from itself, and a word
// that is not valid UTF-8 is never one apart from anything.
func OneApart(a, b string) bool {
	if !Valid(a) || !Valid(b) {
		return false
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	diff := 0
	for i := range ra {
		if ra[i] != rb[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}

	return diff == 1
}

// Fingerprint returns a stable hex digest of the vocabulary. Two sets hold
// the same words iff their fingerprints match (up to SHA-256 collisions).
func Fingerprint(s Set) string {
	h := sha256.New()
	for _, w := range s.Sorted() {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}

	return hex.EncodeToString(h.Sum(nil))
}
