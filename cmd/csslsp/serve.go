package main

import (
	"github.com/csslsp/csslsp/internal/cssconfig"
	"github.com/csslsp/csslsp/internal/lspserver"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	// Registers commonlog's simple backend (writes to stderr), the same
	// pairing the pack's two glsp-based language servers use alongside
	// tliron/glsp — importing it for its side-effecting init() is the
	// commonlog-documented way to select a log sink.
	_ "github.com/tliron/commonlog/simple"
)

func newServeCommand() *cobra.Command {
	var configPath string
	var logLevel int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the language server over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Initialize(logLevel, "")

			cfg := cssconfig.Default()
			if configPath != "" {
				loaded, err := cssconfig.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			return lspserver.NewServer(cfg).RunStdio()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML configuration file (semanticTokens.enable, hover.documentation, hover.references)")
	cmd.Flags().IntVar(&logLevel, "log-level", 1, "commonlog verbosity (0 = critical only, higher = more verbose)")

	return cmd
}
