package instructions

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/entry"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// WithdrawFromTreasury sweeps everything above the rent-exempt floor to
// the payout authority — spec §4.4, §6. Deliberately callable in any
// state once the ticket threshold is met, including while still Open
// (spec §9 Open Question (a), preserved not tightened).
type WithdrawFromTreasury struct {
	Signer         address.Address
	Raffle         address.Address
	PayoutAuthority address.Address
}

func (ix *WithdrawFromTreasury) Apply(ctx *raffle.ApplyContext) raffle.Result {
	configKeylet, _, err := keylet.Config(ctx.ProgramID)
	if err != nil {
		return raffle.ConstraintSeeds
	}
	configData, res := raffle.LoadTyped(ctx, configKeylet)
	if res != raffle.Success {
		return res
	}
	cfg, err := raffle.DecodeConfig(configData)
	if err != nil {
		return raffle.AccountDiscriminatorMismatch
	}
	if res := raffle.RequireManagementAuthority(ctx, cfg, ix.Signer); res != raffle.Success {
		return res
	}
	if res := raffle.RequirePayoutAuthority(cfg, ix.PayoutAuthority); res != raffle.Success {
		return res
	}

	raffleKeylet := keylet.Keylet{Type: entry.TypeRaffle, Address: ix.Raffle}
	raffleData, res := raffle.LoadTyped(ctx, raffleKeylet)
	if res != raffle.Success {
		return res
	}
	r, err := raffle.DecodeRaffle(raffleData)
	if err != nil {
		return raffle.AccountDiscriminatorMismatch
	}

	if r.CurrentTickets < r.MinTickets {
		return raffle.ThresholdNotMet
	}

	treasuryKeylet, treasuryBump, err := keylet.Treasury(ctx.ProgramID, ix.Raffle)
	if err != nil {
		return raffle.ConstraintSeeds
	}
	treasuryData, res := raffle.LoadTyped(ctx, treasuryKeylet)
	if res != raffle.Success {
		return res
	}
	treasury, err := raffle.DecodeTreasury(treasuryData)
	if err != nil {
		return raffle.AccountDiscriminatorMismatch
	}
	if treasury.Raffle != ix.Raffle {
		return raffle.InvalidTreasury
	}
	if res := raffle.VerifyWithBump(ctx, treasuryKeylet.Address, treasuryBump, address.TreasurySeeds(ix.Raffle)...); res != raffle.Success {
		return raffle.InvalidTreasury
	}

	rentMinimum := ctx.Rent.ExemptMinimum(len(treasury.Encode()))
	balance := ctx.View.Balance(treasuryKeylet.Address)
	if balance <= rentMinimum {
		return raffle.Success
	}
	withdrawAmount := balance - rentMinimum

	if err := ctx.View.Debit(treasuryKeylet.Address, withdrawAmount); err != nil {
		return raffle.InsufficientFunds
	}
	if err := ctx.View.Credit(ix.PayoutAuthority, withdrawAmount); err != nil {
		return raffle.InsufficientFunds
	}
	return raffle.Success
}
