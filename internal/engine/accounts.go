package engine

import "github.com/viralvaultgg/solana-program/internal/address"

// Accounts is the account list attached to an instruction, keyed by the
// role name spec §6 uses in each instruction's accounts table ("signer",
// "raffle", "treasury", ...). This stands in for the ordered account list
// a real Solana transaction carries; callers resolve roles to addresses
// the same way a client resolves named accounts before submission.
type Accounts map[string]address.Address

// Role names shared across instruction accounts tables (spec §6).
const (
	RoleSigner          = "signer"
	RoleConfig          = "config"
	RoleRaffle          = "raffle"
	RoleTreasury        = "treasury"
	RoleTicketBalance   = "ticket_balance"
	RoleEntry           = "entry"
	RoleWinnerData      = "winner_data"
	RoleSlotHashes      = "slot_hashes"
	RolePayoutAuthority = "payout_authority"
)

type missingAccountError struct{ role string }

func (e missingAccountError) Error() string {
	if e.role == "" {
		return "engine: missing account"
	}
	return "engine: missing account: " + e.role
}

func (a Accounts) require(role string) (address.Address, error) {
	addr, ok := a[role]
	if !ok {
		return address.Zero, missingAccountError{role: role}
	}
	return addr, nil
}
