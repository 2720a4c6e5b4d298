// SPDX-License-Identifier: MIT

// Package wordchain finds the shortest chain of words that turns one word
// into another by changing a single character at a time, every
// intermediate being a real word of the same length.
//
// The module is organized as a set of small packages:
//
//	words/      vocabulary sets and word-list loading
//	wordgraph/  parallel construction of the one-letter-apart graph
//	chain/      breadth-first shortest-path search over that graph
//	cache/      badger-backed persistence of a built graph
//	config/     YAML configuration with validation
//	server/     HTTP API over a loaded graph
//
// The wordchain command (cmd/wordchain) wires these together:
//
//	wordchain -w words.txt cold warm
//	wordchain -g graph.db --demo
//	wordchain build -w words.txt -o graph.db
//	wordchain serve -g graph.db --addr :8080
//
// A minimal library use looks like:
//
//	set, _ := words.LoadFile("words.txt")
//	g, _ := wordgraph.Build(ctx, set)
//	path, ok := chain.FindPath("cold", "warm", g)
package wordchain
