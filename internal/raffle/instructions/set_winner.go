package instructions

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/entry"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// SetWinner verifies the submitted Entry contains the winning ticket and
// transitions Drawing->Drawn — spec §4.2, §4.3, §6. It is a pure
// verification step: no entropy is consumed, the winning ticket was
// already fixed at draw time.
type SetWinner struct {
	Raffle    address.Address
	EntrySeed [8]byte
}

func (ix *SetWinner) Apply(ctx *raffle.ApplyContext) raffle.Result {
	raffleKeylet := keylet.Keylet{Type: entry.TypeRaffle, Address: ix.Raffle}
	raffleData, res := raffle.LoadTyped(ctx, raffleKeylet)
	if res != raffle.Success {
		return res
	}
	r, err := raffle.DecodeRaffle(raffleData)
	if err != nil {
		return raffle.AccountDiscriminatorMismatch
	}
	if r.State != raffle.StateDrawing {
		return raffle.RaffleNotDrawing
	}
	if r.WinningTicket == nil {
		return raffle.InvalidWinningEntry
	}

	entryKeylet, _, err := keylet.Entry(ctx.ProgramID, ix.Raffle, ix.EntrySeed)
	if err != nil {
		return raffle.ConstraintSeeds
	}
	entryData, res := raffle.LoadTyped(ctx, keylet.Keylet{Type: entry.TypeEntry, Address: entryKeylet.Address})
	if res != raffle.Success {
		return res
	}
	e, err := raffle.DecodeEntry(entryData)
	if err != nil {
		return raffle.AccountDiscriminatorMismatch
	}
	if e.Raffle != ix.Raffle {
		return raffle.ConstraintSeeds
	}

	if !e.Contains(*r.WinningTicket) {
		return raffle.InvalidWinningEntry
	}

	r.WinnerAddress = &e.Owner
	r.State = raffle.StateDrawn
	if err := ctx.View.Update(raffleKeylet, r.Encode()); err != nil {
		return raffle.AccountDiscriminatorMismatch
	}
	return raffle.Success
}
