// Command csslsp is the CLI entry point (spec §6's "external collaborators"
// + SPEC_FULL.md §4's CLI ambient stack): a `serve` subcommand runs the LSP
// server over stdio, `parse` dumps the §6 debug tree-serialization format
// for a file, and `fuzz` runs the C15 corpus property checks for N
// iterations outside of `go test`. Grounded on
// aledsdavies-opal/cli/main.go's cobra.Command wiring — esbuild's own
// cmd/esbuild/main.go hand-rolls its flag parser to support its bundler's
// sprawling flag surface; this CLI's surface is three subcommands, which
// is exactly what cobra's multi-command tree is for.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "csslsp",
		Short: "CSS language service: incremental parser, selection ranges, semantic tokens, hover",
	}

	root.AddCommand(newServeCommand())
	root.AddCommand(newParseCommand())
	root.AddCommand(newFuzzCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
