package config

import (
	"fmt"

	"github.com/viralvaultgg/solana-program/internal/address"
)

// Validate checks that every configured value is well-formed enough to
// start raffled. Individual addresses are allowed to be empty (a fresh
// deployment may not yet know its program ID) but if present must parse.
func Validate(c *Config) error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("rpc.listen_addr must not be empty")
	}

	if c.ProgramID != "" {
		if _, err := address.ParseAddress(c.ProgramID); err != nil {
			return fmt.Errorf("program_id: %w", err)
		}
	}
	if c.BootstrapAdmin != "" {
		if _, err := address.ParseAddress(c.BootstrapAdmin); err != nil {
			return fmt.Errorf("bootstrap_admin: %w", err)
		}
	}
	if c.BootstrapPayoutAuthority != "" {
		if _, err := address.ParseAddress(c.BootstrapPayoutAuthority); err != nil {
			return fmt.Errorf("bootstrap_payout_authority: %w", err)
		}
	}

	if c.Ledger.EntropyCacheSize <= 0 {
		return fmt.Errorf("ledger.entropy_cache_size must be positive")
	}
	if c.Ledger.AccountCacheSize <= 0 {
		return fmt.Errorf("ledger.account_cache_size must be positive")
	}

	return nil
}
