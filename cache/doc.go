// SPDX-License-Identifier: MIT

// Package cache persists word graphs in BadgerDB so a large dictionary only
// has to be processed by wordgraph.Build once.
//
// Layout
//
//	meta/version      format version ("1")
//	meta/fingerprint  words.Fingerprint of the vocabulary the graph was built from
//	meta/words        number of word keys, as a decimal string
//	w/<word>          JSON array of the word's neighbors
//
// Save clears the metadata first and writes it last, so an interrupted save
// reads back as ErrEmpty rather than as a partial graph. Load rebuilds the
// graph through wordgraph.FromAdjacency, which rejects anything that breaks
// the graph invariants.
package cache
