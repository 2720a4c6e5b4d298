// SPDX-License-Identifier: MIT

package chain

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordchain/words"
)

var tracer = otel.Tracer("wordchain.chain")

// queueItem pairs a word with its distance from the initial word.
type queueItem struct {
	word  string
	depth int
}

// walker holds the mutable state of a single search.
type walker struct {
	graph     Neighborer
	opts      Options
	initial   string
	goal      string
	queue     []queueItem
	head      int
	parent    map[string]string // discovered word -> predecessor; initial -> initial
	truncated bool
	res       *Result
}

// FindPath returns a shortest chain from initial to goal in g and true, or
// nil and false if there is none.
func FindPath(initial, goal string, g Neighborer, opts ...Option) (Path, bool) {
	res := Search(initial, goal, g, opts...)
	return res.Path, res.Found
}

// Search runs the breadth-first search and reports how it ended.
// It never returns an error: every failure mode is a Reason.
func Search(initial, goal string, g Neighborer, opts ...Option) *Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	_, span := tracer.Start(o.Ctx, "chain.Search",
		trace.WithAttributes(
			attribute.String("initial", initial),
			attribute.String("goal", goal),
			attribute.Int("max_depth", o.MaxDepth),
		),
	)
	defer span.End()

	res := search(initial, goal, g, o)

	searchTotal.WithLabelValues(res.Reason.String()).Inc()
	span.SetAttributes(
		attribute.String("reason", res.Reason.String()),
		attribute.Int("visited", res.Visited),
		attribute.Int("steps", res.Path.Steps()),
	)

	return res
}

func search(initial, goal string, g Neighborer, o Options) *Result {
	if words.Len(initial) != words.Len(goal) {
		return &Result{Reason: LengthMismatch}
	}
	if initial == goal {
		return &Result{Path: Path{initial}, Found: true, Reason: Found}
	}
	if g == nil {
		return &Result{Reason: Exhausted}
	}

	w := &walker{
		graph:   g,
		opts:    o,
		initial: initial,
		goal:    goal,
		parent:  map[string]string{initial: initial},
		res:     &Result{},
	}
	w.queue = append(w.queue, queueItem{word: initial})
	w.loop()

	return w.res
}

// loop expands words in FIFO order until the goal is discovered, the
// frontier is empty, or the context ends.
func (w *walker) loop() {
	for w.head < len(w.queue) {
		if w.opts.Ctx.Err() != nil {
			w.res.Reason = Cancelled
			return
		}

		item := w.queue[w.head]
		w.head++
		w.res.Visited++
		w.opts.OnVisit(item.word, item.depth)

		if w.expand(item) {
			w.res.Path = w.pathToGoal()
			w.res.Found = true
			w.res.Reason = Found
			return
		}
	}

	if w.truncated {
		w.res.Reason = DepthLimit
	} else {
		w.res.Reason = Exhausted
	}
}

// expand enqueues every undiscovered neighbor of item and reports whether
// the goal was among them.
func (w *walker) expand(item queueItem) bool {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		w.truncated = true
		return false
	}
	for _, nbr := range w.graph.Neighbors(item.word) {
		if _, seen := w.parent[nbr]; seen {
			continue
		}
		w.parent[nbr] = item.word
		if nbr == w.goal {
			return true
		}
		w.queue = append(w.queue, queueItem{word: nbr, depth: next})
	}

	return false
}

// pathToGoal walks predecessors from the goal back to the initial word and
// returns them in initial → goal order. A chain longer than the number of
// discovered words means the predecessor map is corrupt.
func (w *walker) pathToGoal() Path {
	path := Path{w.goal}
	for cur := w.goal; cur != w.initial; {
		if len(path) > len(w.parent) {
			panic(fmt.Sprintf("chain: predecessor chain from %q does not reach %q", w.goal, w.initial))
		}
		cur = w.parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
