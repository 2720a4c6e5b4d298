// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordchain/words"
)

func newBuildCommand(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the word graph from word lists and save it",
		Long: `Build the word graph from the given word lists (or the system dictionary)
and save it to the graph cache, replacing whatever was stored there.

Examples:
  wordchain build -w /usr/share/dict/words
  wordchain build -w words.txt -o words.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, rf)
		},
	}
}

func runBuild(cmd *cobra.Command, rf *rootFlags) error {
	e, err := setup(cmd, rf)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	set, err := words.LoadFiles(e.cfg.WordListsOrDefault()...)
	if err != nil {
		return err
	}
	g, err := e.buildAndSave(ctx, rf, set, words.Fingerprint(set))
	if err != nil {
		return err
	}

	st := g.Stats()
	fmt.Fprintf(e.out, "%d words, %d connections, %d without neighbors\n", st.Words, st.Edges, st.Isolated)
	if out := e.outputPath(rf); out != "" {
		fmt.Fprintf(e.out, "saved to %s\n", out)
	}

	return nil
}
