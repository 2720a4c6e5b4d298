// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordchain/chain"
	"github.com/katalvlaran/wordchain/wordgraph"
)

// Demo word lengths and pairs per length.
const (
	demoMinLength = 3
	demoMaxLength = 7
	demoPairs     = 3
)

func runQuery(cmd *cobra.Command, rf *rootFlags, qf *queryFlags, args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("%w: initial word and goal word must be given together", errUsage)
	}
	// Without a query or demo, only flags that build or save a graph give
	// the command something to do; a graph input alone is never loaded.
	if len(args) == 0 && !qf.demo && len(rf.wordLists) == 0 && rf.graphOutput == "" {
		return cmd.Help()
	}

	e, err := setup(cmd, rf)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	g, err := e.resolveGraph(ctx, rf)
	if err != nil {
		return err
	}

	q := &querier{
		graph:    g,
		out:      e.out,
		maxDepth: e.cfg.Search.MaxDepth,
		timeout:  e.cfg.Search.Timeout,
	}
	switch {
	case qf.demo:
		seed := qf.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		q.demo(ctx, rand.New(rand.NewSource(seed)))
	case len(args) == 2:
		q.printChain(ctx, args[0], args[1])
	}

	return nil
}

// querier prints chains found in one graph.
type querier struct {
	graph    *wordgraph.Graph
	out      io.Writer
	maxDepth int
	timeout  time.Duration
}

// printChain shows the chain from initial to goal, or that none exists.
func (q *querier) printChain(ctx context.Context, initial, goal string) {
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}
	opts := []chain.Option{chain.WithContext(ctx)}
	if q.maxDepth > 0 {
		opts = append(opts, chain.WithMaxDepth(q.maxDepth))
	}

	fmt.Fprintf(q.out, "Finding shortest path from %q to %q\n", initial, goal)
	path, ok := chain.FindPath(initial, goal, q.graph, opts...)
	if !ok {
		fmt.Fprintf(q.out, "No path found between %q and %q\n", initial, goal)
		return
	}
	fmt.Fprintln(q.out, path)
}

// demo prints chains between random pairs of words of each demo length.
func (q *querier) demo(ctx context.Context, rnd *rand.Rand) {
	vocab := q.graph.Vocabulary()
	for n := demoMinLength; n <= demoMaxLength; n++ {
		candidates := vocab.OfLength(n)
		if len(candidates) < 2 {
			continue
		}
		for i := 0; i < demoPairs; i++ {
			a := rnd.Intn(len(candidates))
			b := rnd.Intn(len(candidates) - 1)
			if b >= a {
				b++
			}
			q.printChain(ctx, candidates[a], candidates[b])
			fmt.Fprintln(q.out)
		}
	}
}
