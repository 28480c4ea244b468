package instructions

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/entry"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/entropy"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// DrawWinningTicket selects winning_ticket and transitions Open->Drawing
// — spec §4.2, §4.5, §6.
type DrawWinningTicket struct {
	Raffle             address.Address
	SlotHashesAccount  address.Address
	SlotHashes         []entropy.SlotHash
}

func (ix *DrawWinningTicket) Apply(ctx *raffle.ApplyContext) raffle.Result {
	if ix.SlotHashesAccount != address.SlotHashesSysvar {
		return raffle.InvalidSlotHashesAccount
	}

	raffleKeylet := keylet.Keylet{Type: entry.TypeRaffle, Address: ix.Raffle}
	data, res := raffle.LoadTyped(ctx, raffleKeylet)
	if res != raffle.Success {
		return res
	}
	r, err := raffle.DecodeRaffle(data)
	if err != nil {
		return raffle.AccountDiscriminatorMismatch
	}

	if r.State != raffle.StateOpen {
		return raffle.RaffleNotOpen
	}

	timeReady := ctx.Now >= r.EndTime
	supplyReady := r.MaxTickets != nil && r.CurrentTickets >= *r.MaxTickets
	if !timeReady && !supplyReady {
		return raffle.RaffleNotEnded
	}
	if r.CurrentTickets < r.MinTickets {
		return raffle.InsufficientTickets
	}

	winningTicket, err := ctx.Entropy.Draw(ix.Raffle, ix.SlotHashes, r.CurrentTickets, ctx.Now)
	if err != nil {
		return raffle.InvalidSlotHashesAccount
	}

	r.WinningTicket = &winningTicket
	r.State = raffle.StateDrawing
	if err := ctx.View.Update(raffleKeylet, r.Encode()); err != nil {
		return raffle.AccountDiscriminatorMismatch
	}
	return raffle.Success
}
