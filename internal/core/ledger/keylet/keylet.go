// Package keylet pairs a record's expected Type with its derived Address,
// the single value passed to the LedgerView when an instruction reads or
// writes an account. Addresses are already domain-separated by their
// seed prefix strings (spec §6), so derivation goes straight through
// internal/address rather than a separate per-kind space table.
package keylet

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/entry"
)

// Keylet names the expected record Type at a derived Address.
type Keylet struct {
	Type    entry.Type
	Address address.Address
}

// Config derives the singleton Config keylet.
func Config(programID address.Address) (Keylet, uint8, error) {
	addr, bump, err := address.Derive(programID, address.ConfigSeeds()...)
	return Keylet{Type: entry.TypeConfig, Address: addr}, bump, err
}

// Raffle derives the Keylet for a given raffle_id.
func Raffle(programID address.Address, raffleID uint64) (Keylet, uint8, error) {
	addr, bump, err := address.Derive(programID, address.RaffleSeeds(raffleID)...)
	return Keylet{Type: entry.TypeRaffle, Address: addr}, bump, err
}

// Treasury derives the Keylet for a raffle's escrow.
func Treasury(programID, raffle address.Address) (Keylet, uint8, error) {
	addr, bump, err := address.Derive(programID, address.TreasurySeeds(raffle)...)
	return Keylet{Type: entry.TypeTreasury, Address: addr}, bump, err
}

// TicketBalance derives the Keylet for a (raffle, owner) ticket balance.
func TicketBalance(programID, raffle, owner address.Address) (Keylet, uint8, error) {
	addr, bump, err := address.Derive(programID, address.TicketBalanceSeeds(raffle, owner)...)
	return Keylet{Type: entry.TypeTicketBalance, Address: addr}, bump, err
}

// Entry derives the Keylet for a single purchase entry.
func Entry(programID, raffle address.Address, entrySeed [8]byte) (Keylet, uint8, error) {
	addr, bump, err := address.Derive(programID, address.EntrySeeds(raffle, entrySeed)...)
	return Keylet{Type: entry.TypeEntry, Address: addr}, bump, err
}

// WinnerData derives the Keylet for a winner's submitted data.
func WinnerData(programID, raffle, winner address.Address) (Keylet, uint8, error) {
	addr, bump, err := address.Derive(programID, address.WinnerDataSeeds(raffle, winner)...)
	return Keylet{Type: entry.TypeWinnerData, Address: addr}, bump, err
}
