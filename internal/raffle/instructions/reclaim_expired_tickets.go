package instructions

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/entry"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// ReclaimExpiredTickets refunds one buyer's contribution from an Expired
// raffle and closes their TicketBalance — spec §4.4, §6. Entry records
// from expired raffles are intentionally left orphaned (spec §9 Open
// Question (b)).
type ReclaimExpiredTickets struct {
	Signer address.Address
	Raffle address.Address
}

func (ix *ReclaimExpiredTickets) Apply(ctx *raffle.ApplyContext) raffle.Result {
	if !ctx.IsSigner(ix.Signer) {
		return raffle.OwnerMismatch
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
	if r.State != raffle.StateExpired {
		return raffle.RaffleNotExpired
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
	if balance.TicketCount == 0 {
		return raffle.NoTicketsOwned
	}

	refund := balance.TicketCount * r.TicketPrice

	if err := ctx.View.Debit(treasuryKeylet.Address, refund); err != nil {
		return raffle.InsufficientFunds
	}
	if err := ctx.View.Credit(ix.Signer, refund); err != nil {
		return raffle.InsufficientFunds
	}

	balanceRent := ctx.View.Balance(balanceKeylet.Address)
	if err := ctx.View.Debit(balanceKeylet.Address, balanceRent); err != nil {
		return raffle.InsufficientFunds
	}
	if err := ctx.View.Credit(ix.Signer, balanceRent); err != nil {
		return raffle.InsufficientFunds
	}

	if err := ctx.View.Erase(balanceKeylet); err != nil {
		return raffle.AccountDiscriminatorMismatch
	}
	return raffle.Success
}
