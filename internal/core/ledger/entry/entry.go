// Package entry names the persistent record kinds the raffle program
// stores: the six kinds in spec §3, each with its own discriminator and
// codec.
package entry

import "github.com/viralvaultgg/solana-program/internal/codec"

// Type identifies which of the six persistent record kinds occupies an
// account.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeConfig
	TypeRaffle
	TypeTreasury
	TypeTicketBalance
	TypeEntry
	TypeWinnerData
)

func (t Type) String() string {
	switch t {
	case TypeConfig:
		return "Config"
	case TypeRaffle:
		return "Raffle"
	case TypeTreasury:
		return "Treasury"
	case TypeTicketBalance:
		return "TicketBalance"
	case TypeEntry:
		return "Entry"
	case TypeWinnerData:
		return "WinnerData"
	default:
		return "Unknown"
	}
}

// Discriminator returns the wire discriminator used by internal/codec for
// records of this kind.
func (t Type) Discriminator() codec.Discriminator {
	switch t {
	case TypeConfig:
		return codec.DiscConfig
	case TypeRaffle:
		return codec.DiscRaffle
	case TypeTreasury:
		return codec.DiscTreasury
	case TypeTicketBalance:
		return codec.DiscTicketBalance
	case TypeEntry:
		return codec.DiscEntry
	case TypeWinnerData:
		return codec.DiscWinnerData
	default:
		return 0
	}
}
