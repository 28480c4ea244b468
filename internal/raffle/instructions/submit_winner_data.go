package instructions

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/entry"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

const (
	minWinnerDataBytes = 1
	maxWinnerDataBytes = 855
)

// SubmitWinnerData records the winner's claim payload and transitions
// Drawn->Claimed — spec §3, §4.2, §6.
type SubmitWinnerData struct {
	Signer address.Address
	Raffle address.Address
	Data   string
}

func (ix *SubmitWinnerData) Apply(ctx *raffle.ApplyContext) raffle.Result {
	raffleKeylet := keylet.Keylet{Type: entry.TypeRaffle, Address: ix.Raffle}
	raffleData, res := raffle.LoadTyped(ctx, raffleKeylet)
	if res != raffle.Success {
		return res
	}
	r, err := raffle.DecodeRaffle(raffleData)
	if err != nil {
		return raffle.AccountDiscriminatorMismatch
	}
	if r.State != raffle.StateDrawn {
		return raffle.RaffleNotDrawn
	}
	if res := raffle.RequireWinner(ctx, r, ix.Signer); res != raffle.Success {
		return res
	}

	if len(ix.Data) < minWinnerDataBytes || len(ix.Data) > maxWinnerDataBytes {
		return raffle.InvalidDataLength
	}

	winnerDataKeylet, _, err := keylet.WinnerData(ctx.ProgramID, ix.Raffle, ix.Signer)
	if err != nil {
		return raffle.ConstraintSeeds
	}
	if ctx.View.Exists(winnerDataKeylet) {
		return raffle.ConstraintSeeds
	}

	wd := &raffle.WinnerData{Data: ix.Data}
	if err := ctx.View.Insert(winnerDataKeylet, wd.Encode()); err != nil {
		return raffle.ConstraintSeeds
	}
	rentMinimum := ctx.Rent.ExemptMinimum(len(wd.Encode()))
	if err := ctx.View.Credit(winnerDataKeylet.Address, rentMinimum); err != nil {
		return raffle.InsufficientFunds
	}

	r.State = raffle.StateClaimed
	if err := ctx.View.Update(raffleKeylet, r.Encode()); err != nil {
		return raffle.AccountDiscriminatorMismatch
	}
	return raffle.Success
}
