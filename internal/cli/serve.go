package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lingopad/lingopad/internal/config"
	"github.com/lingopad/lingopad/internal/mcp"
)

func newServeCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP translation server on stdio",
		Long: `Start the MCP server, reading JSON-RPC requests from stdin and writing
responses to stdout. Logs go to stderr.

Configuration comes from ~/.config/lingopad/config.toml, overridden by
environment variables: CONTEXT_FILLING_ENABLED, CONTEXT_WINDOW_TARGET,
CONTEXT_FILLING_RATIO, SAFETY_MARGIN_TOKENS, TOKEN_ESTIMATION_METHOD,
INTERFERENCE_ENABLED, INTERFERENCE_LEVEL, INTERFERENCE_TARGET, and
TRANSLATION_PROVIDER.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			srv, err := mcp.NewServer(cfg, version, logger)
			if err != nil {
				return err
			}
			defer srv.Close()

			logger.Info().Str("version", version).Msg("serving MCP on stdio")
			return srv.ServeStdio()
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}
