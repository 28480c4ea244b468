// Package config loads raffled's runtime configuration: the listen
// address its JSON-RPC surface binds to, the rent model it charges
// accounts against, and optional bootstrap authority keys.
//
// A Config struct with mapstructure tags is populated by a loader that
// reads a TOML file through viper with defaults set first, since this
// program has one listener and one in-memory ledger, not a peer-to-peer
// node with its own port table and node database.
package config

import "github.com/viralvaultgg/solana-program/internal/address"

// Config is raffled's complete runtime configuration.
type Config struct {
	Server RPCConfig   `toml:"rpc" mapstructure:"rpc"`
	Rent   RentConfig  `toml:"rent" mapstructure:"rent"`
	Ledger LedgerConfig `toml:"ledger" mapstructure:"ledger"`

	// ProgramID is this program's own address, the seed every keylet
	// derivation in internal/core/ledger/keylet is rooted at.
	ProgramID string `toml:"program_id" mapstructure:"program_id"`

	// BootstrapAdmin and BootstrapPayoutAuthority are checked to parse
	// as addresses when set. No component reads them: init_config takes
	// its management and payout authorities from the instruction
	// payload.
	BootstrapAdmin            string `toml:"bootstrap_admin" mapstructure:"bootstrap_admin"`
	BootstrapPayoutAuthority string `toml:"bootstrap_payout_authority" mapstructure:"bootstrap_payout_authority"`

	configPath string `toml:"-" mapstructure:"-"`
}

// RPCConfig configures the JSON-RPC HTTP listener (internal/server/api/jsonrpc).
type RPCConfig struct {
	ListenAddr string `toml:"listen_addr" mapstructure:"listen_addr"`
}

// RentConfig parameterizes raffle.FixedRentModel.
type RentConfig struct {
	BaseLamports    uint64 `toml:"base_lamports" mapstructure:"base_lamports"`
	LamportsPerByte uint64 `toml:"lamports_per_byte" mapstructure:"lamports_per_byte"`
}

// LedgerConfig sizes in-process caches. EntropyCacheSize bounds the
// entropy source's digest cache. AccountCacheSize must be positive but
// is not read by any component; the ledger store has no cache.
type LedgerConfig struct {
	EntropyCacheSize int `toml:"entropy_cache_size" mapstructure:"entropy_cache_size"`
	AccountCacheSize int `toml:"account_cache_size" mapstructure:"account_cache_size"`
}

// GetConfigPath returns the file this configuration was loaded from, or
// "" if it came from defaults alone.
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// ProgramAddress parses ProgramID, returning an error if it is missing or
// malformed.
func (c *Config) ProgramAddress() (address.Address, error) {
	return address.ParseAddress(c.ProgramID)
}
