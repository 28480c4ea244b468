package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/viralvaultgg/solana-program/internal/di"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON-RPC server over an in-memory ledger",
	Long: `serve starts the JSON-RPC listener (internal/server/api/jsonrpc)
bound to a fresh in-memory account ledger, wiring the ledger store, rent
model, entropy source, and clock from configuration through the DI
container rather than constructing the handler inline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		container := di.New()
		provider := di.NewProvider(container, activeConfig)
		if err := provider.RegisterAll(); err != nil {
			return fmt.Errorf("wiring services: %w", err)
		}

		server, err := provider.GetRPCServer()
		if err != nil {
			return fmt.Errorf("building rpc server: %w", err)
		}

		addr := activeConfig.Server.ListenAddr
		if !quiet {
			fmt.Fprintf(os.Stdout, "raffled: listening on %s\n", addr)
		}
		return http.ListenAndServe(addr, server)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
