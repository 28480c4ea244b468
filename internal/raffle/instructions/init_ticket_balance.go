package instructions

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/entry"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// InitTicketBalance creates the per-(raffle,buyer) TicketBalance — spec
// §3, §6. Any signer may initialize their own balance ahead of buying.
type InitTicketBalance struct {
	Signer address.Address
	Raffle address.Address
}

func (ix *InitTicketBalance) Apply(ctx *raffle.ApplyContext) raffle.Result {
	if !ctx.IsSigner(ix.Signer) {
		return raffle.OwnerMismatch
	}

	raffleKeylet := keylet.Keylet{Type: entry.TypeRaffle, Address: ix.Raffle}
	if _, res := raffle.LoadTyped(ctx, raffleKeylet); res != raffle.Success {
		return res
	}

	balanceKeylet, bump, err := keylet.TicketBalance(ctx.ProgramID, ix.Raffle, ix.Signer)
	if err != nil {
		return raffle.ConstraintSeeds
	}
	if ctx.View.Exists(balanceKeylet) {
		return raffle.ConstraintSeeds
	}

	tb := &raffle.TicketBalance{Owner: ix.Signer, TicketCount: 0, Bump: bump}
	if err := ctx.View.Insert(balanceKeylet, tb.Encode()); err != nil {
		return raffle.ConstraintSeeds
	}
	rentMinimum := ctx.Rent.ExemptMinimum(len(tb.Encode()))
	if err := ctx.View.Credit(balanceKeylet.Address, rentMinimum); err != nil {
		return raffle.InsufficientFunds
	}
	return raffle.Success
}
