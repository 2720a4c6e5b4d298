// SPDX-License-Identifier: MIT

// Package words provides the vocabulary primitives used by wordgraph and chain:
// a Set of unique words, the Alphabet of a vocabulary, the one-character
// neighbor predicate, and a supplier that reads newline-delimited word lists.
//
// Characters are Unicode code points. A word's length is its rune count, so
// "café" and "cafe" both have length 4 and differ in exactly one position.
//
// Loading
//
//	set, err := words.LoadFiles("/usr/share/dict/words", "extra.txt")
//
// Each non-blank line is one word, kept verbatim (no case folding, no
// trimming beyond the line terminator). Multiple files are merged into one Set.
//
// Fingerprint
//
// Fingerprint hashes the sorted vocabulary. The cache package stores it next
// to a persisted graph so a graph built from a different word list is never
// served as if it matched.
package words
