package instructions

import (
	"strings"

	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

const (
	minTicketPrice = 100_000_000     // 0.1 * 10^9 lamports
	maxTicketPrice = 100_000_000_000 // 100 * 10^9 lamports

	minMinTickets = 1
	maxMinTickets = 1_000_000

	minDuration = 3_601
	maxDuration = 2_592_000

	maxMetadataUriBytes = 256
)

// CreateRaffle creates a Raffle and its Treasury, spec §3, §4.2, §6.
// raffle_id is Config.raffle_counter at creation time; the counter is
// then incremented (spec §3 Config invariant).
type CreateRaffle struct {
	Signer      address.Address
	MetadataUri string
	TicketPrice uint64
	EndTime     int64
	MinTickets  uint64
	MaxTickets  *uint64
}

func (ix *CreateRaffle) Apply(ctx *raffle.ApplyContext) raffle.Result {
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

	if res := validateCreateRaffleInputs(ix, ctx.Now); res != raffle.Success {
		return res
	}

	raffleID := cfg.RaffleCounter
	raffleKeylet, _, err := keylet.Raffle(ctx.ProgramID, raffleID)
	if err != nil {
		return raffle.ConstraintSeeds
	}
	if ctx.View.Exists(raffleKeylet) {
		return raffle.ConstraintSeeds
	}

	treasuryKeylet, treasuryBump, err := keylet.Treasury(ctx.ProgramID, raffleKeylet.Address)
	if err != nil {
		return raffle.ConstraintSeeds
	}
	if ctx.View.Exists(treasuryKeylet) {
		return raffle.ConstraintSeeds
	}

	r := &raffle.Raffle{
		MetadataUri:    ix.MetadataUri,
		TicketPrice:    ix.TicketPrice,
		MinTickets:     ix.MinTickets,
		MaxTickets:     ix.MaxTickets,
		CurrentTickets: 0,
		CreationTime:   ctx.Now,
		EndTime:        ix.EndTime,
		Treasury:       treasuryKeylet.Address,
		State:          raffle.StateOpen,
	}
	if err := ctx.View.Insert(raffleKeylet, r.Encode()); err != nil {
		return raffle.ConstraintSeeds
	}

	treasury := &raffle.Treasury{Raffle: raffleKeylet.Address, Bump: treasuryBump}
	if err := ctx.View.Insert(treasuryKeylet, treasury.Encode()); err != nil {
		return raffle.ConstraintSeeds
	}
	rentMinimum := ctx.Rent.ExemptMinimum(len(treasury.Encode()))
	if err := ctx.View.Credit(treasuryKeylet.Address, rentMinimum); err != nil {
		return raffle.InsufficientFunds
	}

	cfg.RaffleCounter++
	if err := ctx.View.Update(configKeylet, cfg.Encode()); err != nil {
		return raffle.AccountDiscriminatorMismatch
	}

	return raffle.Success
}

func validateCreateRaffleInputs(ix *CreateRaffle, now int64) raffle.Result {
	if len(ix.MetadataUri) == 0 || len(ix.MetadataUri) > maxMetadataUriBytes {
		return raffle.MetadataUriTooLong
	}
	if !strings.HasPrefix(ix.MetadataUri, "https://") && !strings.HasPrefix(ix.MetadataUri, "ipfs://") {
		return raffle.InvalidMetadataUri
	}
	if ix.TicketPrice < minTicketPrice {
		return raffle.TicketPriceTooLow
	}
	if ix.TicketPrice > maxTicketPrice {
		return raffle.TicketPriceTooHigh
	}
	if ix.MinTickets < minMinTickets {
		return raffle.MinTicketsTooLow
	}
	if ix.MinTickets > maxMinTickets {
		return raffle.MinTicketsTooHigh
	}
	if ix.MaxTickets != nil && *ix.MaxTickets < ix.MinTickets {
		return raffle.MaxTicketsTooLow
	}
	duration := ix.EndTime - now
	if duration < minDuration {
		return raffle.EndTimeTooClose
	}
	if duration > maxDuration {
		return raffle.DurationTooLong
	}
	return raffle.Success
}
