package cli

import (
	"github.com/ehrlich-b/cubefold/internal/logging"
	"github.com/ehrlich-b/cubefold/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve starts the HTTP API exposing the rewrite operation over JSON
for non-CLI clients.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		logging.Log.Info().Str("addr", addr).Msg("serve: starting")

		server := web.NewServer()
		return server.Start(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "address to listen on")
}
