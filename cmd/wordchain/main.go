// SPDX-License-Identifier: MIT

// Command wordchain finds the shortest chain of single-letter changes
// between two dictionary words. See internal/cli for the commands.
package main

import (
	"github.com/katalvlaran/wordchain/internal/cli"
)

// Set at build time via -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.Version = version
	cli.Commit = commit

	cli.Execute(cli.NewRootCommand())
}
