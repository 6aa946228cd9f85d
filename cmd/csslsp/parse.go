package main

import (
	"fmt"
	"os"

	"github.com/csslsp/csslsp/internal/cssparser"
	"github.com/csslsp/csslsp/internal/csstree"
	"github.com/csslsp/csslsp/internal/logger"
	"github.com/spf13/cobra"
)

func newParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file.css>",
		Short: "Parse a file and print the §6 debug tree-serialization format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			contents, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			parse := cssparser.Parse(logger.Source{Contents: string(contents), KeyPath: path, PrettyPath: path})
			fmt.Print(csstree.Dump(parse.RedRoot()))
			if len(parse.Errors) > 0 {
				fmt.Fprintln(os.Stderr, "--- errors ---")
				fmt.Fprint(os.Stderr, csstree.DumpErrors(parse.Errors))
				return fmt.Errorf("%d syntax error(s)", len(parse.Errors))
			}
			return nil
		},
	}
	return cmd
}
