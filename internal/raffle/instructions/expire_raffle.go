package instructions

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/entry"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// ExpireRaffle transitions Open->Expired once the deadline has passed
// without reaching min_tickets — spec §4.2, §6. Callable by anyone.
type ExpireRaffle struct {
	Raffle address.Address
}

func (ix *ExpireRaffle) Apply(ctx *raffle.ApplyContext) raffle.Result {
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
	if ctx.Now < r.EndTime {
		return raffle.RaffleNotEnded
	}
	if r.CurrentTickets >= r.MinTickets {
		return raffle.ThresholdIsMet
	}

	r.State = raffle.StateExpired
	if err := ctx.View.Update(raffleKeylet, r.Encode()); err != nil {
		return raffle.AccountDiscriminatorMismatch
	}
	return raffle.Success
}
