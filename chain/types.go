// SPDX-License-Identifier: MIT

package chain

import (
	"context"
	"strings"

	"github.com/katalvlaran/wordchain/words"
)

// Neighborer is the read-only view of a word graph that the search needs.
// Neighbors must return nil (not panic) for unknown words.
type Neighborer interface {
	Neighbors(word string) []string
}

// Path is a word chain from the initial word to the goal.
type Path []string

// Steps returns the number of single-character changes along p.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Valid reports whether p is non-empty and every consecutive pair is one
// character apart.
func (p Path) Valid() bool {
	if len(p) == 0 {
		return false
	}
	for i := 1; i < len(p); i++ {
		if !words.OneApart(p[i-1], p[i]) {
			return false
		}
	}
	return true
}

// String renders p as "a -> b -> c".
func (p Path) String() string { return strings.Join(p, " -> ") }

// Reason explains how a search ended.
type Reason int

const (
	// Found means the goal was reached (or initial == goal).
	Found Reason = iota
	// LengthMismatch means initial and goal have different lengths.
	LengthMismatch
	// Exhausted means every reachable word was visited without meeting the goal.
	Exhausted
	// DepthLimit means the goal was not within MaxDepth steps.
	DepthLimit
	// Cancelled means the context ended before the search finished.
	Cancelled
)

func (r Reason) String() string {
	switch r {
	case Found:
		return "found"
	case LengthMismatch:
		return "length_mismatch"
	case Exhausted:
		return "exhausted"
	case DepthLimit:
		return "depth_limit"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the outcome of Search.
type Result struct {
	// Path is the chain from initial to goal; nil unless Found.
	Path Path

	// Found reports whether Path is set.
	Found bool

	// Reason explains the outcome.
	Reason Reason

	// Visited counts the words dequeued and expanded.
	Visited int
}

// Option configures a search.
// Option constructors panic on meaningless values.
type Option func(*Options)

// Options holds search parameters and hooks.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeued word.
	Ctx context.Context

	// MaxDepth, if > 0, ignores chains longer than MaxDepth steps.
	// 0 means no limit.
	MaxDepth int

	// OnVisit is called for each word as it is dequeued, with its distance
	// from the initial word.
	OnVisit func(word string, depth int)
}

// DefaultOptions returns a background context, no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) {},
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the chain length in steps.
//
//	d > 0:  chains of at most d steps
//	d == 0: no limit
//	d < 0:  panics
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic("chain: WithMaxDepth(d<0)")
	}
	return func(o *Options) { o.MaxDepth = d }
}

// WithOnVisit registers a hook called as each word is expanded.
func WithOnVisit(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
