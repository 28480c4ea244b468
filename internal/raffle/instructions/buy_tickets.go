package instructions

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/entry"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// BuyTickets allocates a new Entry and advances the ticket counters —
// spec §4.3 steps 1-5, §6.
type BuyTickets struct {
	Signer    address.Address
	Raffle    address.Address
	Amount    uint64
	EntrySeed [8]byte
}

func (ix *BuyTickets) Apply(ctx *raffle.ApplyContext) raffle.Result {
	if !ctx.IsSigner(ix.Signer) {
		return raffle.OwnerMismatch
	}
	if ix.Amount == 0 {
		return raffle.InvalidTicketCount
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

	if r.State != raffle.StateOpen {
		return raffle.RaffleNotOpen
	}
	if ctx.Now >= r.EndTime {
		return raffle.RaffleNotOpen
	}
	if r.MaxTickets != nil {
		if r.CurrentTickets == *r.MaxTickets {
			return raffle.MaximumTicketsSold
		}
		newTotal := r.CurrentTickets + ix.Amount
		if newTotal < r.CurrentTickets { // overflow
			return raffle.InvalidTicketCount
		}
		if newTotal > *r.MaxTickets {
			return raffle.PurchaseExceedsThreshold
		}
	}

	cost := ix.Amount * r.TicketPrice
	if r.TicketPrice != 0 && cost/r.TicketPrice != ix.Amount { // overflow
		return raffle.InvalidTicketCount
	}
	if ctx.View.Balance(ix.Signer) < cost {
		return raffle.InsufficientFunds
	}

	entryKeylet, _, err := keylet.Entry(ctx.ProgramID, ix.Raffle, ix.EntrySeed)
	if err != nil {
		return raffle.ConstraintSeeds
	}
	if ctx.View.Exists(entryKeylet) {
		return raffle.ConstraintSeeds
	}

	balanceKeylet, _, err := keylet.TicketBalance(ctx.ProgramID, ix.Raffle, ix.Signer)
	if err != nil {
		return raffle.ConstraintSeeds
	}
	balanceData, res := raffle.LoadTyped(ctx, keylet.Keylet{Type: entry.TypeTicketBalance, Address: balanceKeylet.Address})
	if res != raffle.Success {
		return res
	}
	balance, err := raffle.DecodeTicketBalance(balanceData)
	if err != nil {
		return raffle.AccountDiscriminatorMismatch
	}
	if balance.Owner != ix.Signer {
		return raffle.OwnerMismatch
	}

	if err := ctx.View.Debit(ix.Signer, cost); err != nil {
		return raffle.InsufficientFunds
	}
	if err := ctx.View.Credit(r.Treasury, cost); err != nil {
		return raffle.InsufficientFunds
	}

	newEntry := &raffle.Entry{
		Raffle:           ix.Raffle,
		Owner:            ix.Signer,
		TicketCount:      ix.Amount,
		TicketStartIndex: r.CurrentTickets,
		Seed:             ix.EntrySeed,
	}
	if err := ctx.View.Insert(entryKeylet, newEntry.Encode()); err != nil {
		return raffle.ConstraintSeeds
	}

	balance.TicketCount += ix.Amount
	if err := ctx.View.Update(balanceKeylet, balance.Encode()); err != nil {
		return raffle.AccountDiscriminatorMismatch
	}

	r.CurrentTickets += ix.Amount
	if err := ctx.View.Update(raffleKeylet, r.Encode()); err != nil {
		return raffle.AccountDiscriminatorMismatch
	}

	return raffle.Success
}
