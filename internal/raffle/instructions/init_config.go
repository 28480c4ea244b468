// Package instructions implements each raffle operation as an
// Instruction value consumed by internal/engine's dispatcher, one file
// per instruction.
package instructions

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// InitConfig creates the singleton Config record — spec §3, §6.
// "Created once by anyone; the creating signer becomes the initial
// upgrade authority; subsequent init_config invocations must fail
// because the address is already allocated."
type InitConfig struct {
	Signer              address.Address
	ManagementAuthority address.Address
	PayoutAuthority     address.Address
}

func (ix *InitConfig) Apply(ctx *raffle.ApplyContext) raffle.Result {
	if res := raffle.RequireSigner(ctx, ix.Signer, raffle.NotProgramManagementAuthority); res != raffle.Success {
		return res
	}

	k, bump, err := keylet.Config(ctx.ProgramID)
	if err != nil {
		return raffle.ConstraintSeeds
	}
	if ctx.View.Exists(k) {
		return raffle.AccountDiscriminatorMismatch
	}

	cfg := &raffle.Config{
		ManagementAuthority: ix.ManagementAuthority,
		PayoutAuthority:      ix.PayoutAuthority,
		UpgradeAuthority:     ix.Signer,
		RaffleCounter:        0,
		Bump:                 bump,
	}
	if err := ctx.View.Insert(k, cfg.Encode()); err != nil {
		return raffle.AccountDiscriminatorMismatch
	}
	return raffle.Success
}
