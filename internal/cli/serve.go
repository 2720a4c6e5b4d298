// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordchain/server"
)

type serveFlags struct {
	addr string
}

func newServeCommand(rf *rootFlags) *cobra.Command {
	sf := &serveFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve word chain queries over HTTP",
		Long: `Load (or build) the word graph once and answer path queries over HTTP.

Examples:
  wordchain serve --addr :8080
  curl 'localhost:8080/v1/path?from=frog&to=goat'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, rf, sf)
		},
	}
	cmd.Flags().StringVar(&sf.addr, "addr", "", "listen address (default from config: :8080)")

	return cmd
}

func runServe(cmd *cobra.Command, rf *rootFlags, sf *serveFlags) error {
	e, err := setup(cmd, rf)
	if err != nil {
		return err
	}
	if sf.addr != "" {
		e.cfg.Server.Addr = sf.addr
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := e.resolveGraph(ctx, rf)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(g, server.Config{
		Timeout:  e.cfg.Search.Timeout,
		MaxDepth: e.cfg.Search.MaxDepth,
		Logger:   e.logger,
	})

	return srv.Run(ctx, e.cfg.Server.Addr)
}
