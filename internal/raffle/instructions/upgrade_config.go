package instructions

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// UpgradeConfig rotates any of Config's three authority keys: each
// non-nil New* field replaces its key, the rest are left as they are.
// Requires the current upgrade authority's signature.
type UpgradeConfig struct {
	Signer               address.Address
	NewManagementAuthority *address.Address
	NewPayoutAuthority     *address.Address
	NewUpgradeAuthority    *address.Address
}

func (ix *UpgradeConfig) Apply(ctx *raffle.ApplyContext) raffle.Result {
	configKeylet, _, err := keylet.Config(ctx.ProgramID)
	if err != nil {
		return raffle.ConstraintSeeds
	}
	data, res := raffle.LoadTyped(ctx, configKeylet)
	if res != raffle.Success {
		return res
	}
	cfg, err := raffle.DecodeConfig(data)
	if err != nil {
		return raffle.AccountDiscriminatorMismatch
	}

	if ix.Signer != cfg.UpgradeAuthority || !ctx.IsSigner(ix.Signer) {
		return raffle.NotProgramManagementAuthority
	}

	if ix.NewManagementAuthority != nil {
		cfg.ManagementAuthority = *ix.NewManagementAuthority
	}
	if ix.NewPayoutAuthority != nil {
		cfg.PayoutAuthority = *ix.NewPayoutAuthority
	}
	if ix.NewUpgradeAuthority != nil {
		cfg.UpgradeAuthority = *ix.NewUpgradeAuthority
	}

	if err := ctx.View.Update(configKeylet, cfg.Encode()); err != nil {
		return raffle.AccountDiscriminatorMismatch
	}
	return raffle.Success
}
