package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/viralvaultgg/solana-program/internal/config"
)

var (
	// Global flags
	configFile string
	debug      bool
	verbose    bool
	quiet      bool

	// activeConfig is populated by initConfig once cobra has parsed flags.
	activeConfig *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "raffled",
	Short: "raffled - deterministic raffle program runtime",
	Long: `raffled runs the deterministic raffle program described by the
instruction set in internal/raffle/instructions: it applies instructions
against an account-keyed ledger and serves the resulting state over
JSON-RPC, the same way a Solana program processes instructions against
accounts, minus the cluster.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path (default: ./raffled.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging (no effect: raffled emits no debug log)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging (no effect: raffled emits no verbose log)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress serve's listening-address line")
}

// initConfig loads configuration from configFile (or the default search
// path) into the package-level config used by serve and simulate.
func initConfig() {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading configuration: %v\n", err)
		os.Exit(1)
	}
	activeConfig = cfg
}