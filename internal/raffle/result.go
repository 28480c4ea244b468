// Package raffle implements the protocol engine: record types, the
// authority/constraint layer, and the instruction registry.
//
// Result groups outcomes into six categories (Configuration, State,
// Authorization, Account, Economic, Data), each a small integer range so
// a caller can band on magnitude rather than switch on every value.
package raffle

import "fmt"

// Result is a stable numeric instruction-result code. Zero is success;
// every other value is a named failure from spec §7, grouped into ranges
// by category so clients can band on magnitude as well as match by name.
type Result int

const (
	Success Result = 0

	// Configuration (100-199): malformed create_raffle/init_config inputs.
	InvalidMetadataUri  Result = 100
	MetadataUriTooLong  Result = 101
	TicketPriceTooLow   Result = 102
	TicketPriceTooHigh  Result = 103
	MinTicketsTooLow    Result = 104
	MinTicketsTooHigh   Result = 105
	MaxTicketsTooLow    Result = 106
	EndTimeTooClose     Result = 107
	DurationTooLong     Result = 108

	// State (200-299): lifecycle / threshold / ticket-supply guards.
	RaffleNotOpen            Result = 200
	RaffleNotEnded           Result = 201
	RaffleNotDrawing         Result = 202
	RaffleNotDrawn           Result = 203
	RaffleNotExpired         Result = 204
	ThresholdNotMet          Result = 205
	ThresholdIsMet           Result = 206
	InsufficientTickets      Result = 207
	MaximumTicketsSold       Result = 208
	PurchaseExceedsThreshold Result = 209

	// Authorization (300-399): signer / role checks.
	NotProgramManagementAuthority Result = 300
	NotPayoutAuthority            Result = 301
	NotWinner                     Result = 302
	OwnerMismatch                 Result = 303

	// Account (400-499): address/ownership/discriminator checks.
	ConstraintSeeds              Result = 400
	InvalidTreasury              Result = 401
	AccountDiscriminatorMismatch Result = 402
	AccountNotInitialized        Result = 403
	InvalidSlotHashesAccount     Result = 404

	// Economic (500-599): lamport accounting failures.
	InsufficientFunds Result = 500
	InvalidTicketCount Result = 501
	NoTicketsOwned     Result = 502

	// Data (600-699): payload validation failures.
	InvalidDataLength   Result = 600
	InvalidWinningEntry Result = 601
)

var resultNames = map[Result]string{
	Success: "Success",

	InvalidMetadataUri: "InvalidMetadataUri",
	MetadataUriTooLong: "MetadataUriTooLong",
	TicketPriceTooLow:  "TicketPriceTooLow",
	TicketPriceTooHigh: "TicketPriceTooHigh",
	MinTicketsTooLow:   "MinTicketsTooLow",
	MinTicketsTooHigh:  "MinTicketsTooHigh",
	MaxTicketsTooLow:   "MaxTicketsTooLow",
	EndTimeTooClose:    "EndTimeTooClose",
	DurationTooLong:    "DurationTooLong",

	RaffleNotOpen:            "RaffleNotOpen",
	RaffleNotEnded:           "RaffleNotEnded",
	RaffleNotDrawing:         "RaffleNotDrawing",
	RaffleNotDrawn:           "RaffleNotDrawn",
	RaffleNotExpired:         "RaffleNotExpired",
	ThresholdNotMet:          "ThresholdNotMet",
	ThresholdIsMet:           "ThresholdIsMet",
	InsufficientTickets:      "InsufficientTickets",
	MaximumTicketsSold:       "MaximumTicketsSold",
	PurchaseExceedsThreshold: "PurchaseExceedsThreshold",

	NotProgramManagementAuthority: "NotProgramManagementAuthority",
	NotPayoutAuthority:            "NotPayoutAuthority",
	NotWinner:                     "NotWinner",
	OwnerMismatch:                 "OwnerMismatch",

	ConstraintSeeds:              "ConstraintSeeds",
	InvalidTreasury:              "InvalidTreasury",
	AccountDiscriminatorMismatch: "AccountDiscriminatorMismatch",
	AccountNotInitialized:        "AccountNotInitialized",
	InvalidSlotHashesAccount:     "InvalidSlotHashesAccount",

	InsufficientFunds:  "InsufficientFunds",
	InvalidTicketCount: "InvalidTicketCount",
	NoTicketsOwned:     "NoTicketsOwned",

	InvalidDataLength:   "InvalidDataLength",
	InvalidWinningEntry: "InvalidWinningEntry",
}

func (r Result) String() string {
	if s, ok := resultNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// IsSuccess reports whether the instruction committed its mutations.
func (r Result) IsSuccess() bool { return r == Success }

// Category buckets a Result into the spec §7 taxonomy by its numeric range.
func (r Result) Category() string {
	switch {
	case r == Success:
		return "Success"
	case r >= 100 && r < 200:
		return "Configuration"
	case r >= 200 && r < 300:
		return "State"
	case r >= 300 && r < 400:
		return "Authorization"
	case r >= 400 && r < 500:
		return "Account"
	case r >= 500 && r < 600:
		return "Economic"
	case r >= 600 && r < 700:
		return "Data"
	default:
		return "Unknown"
	}
}

// Error lets a Result satisfy the error interface for callers (e.g. the
// JSON-RPC layer) that prefer Go error plumbing at the boundary, even
// though the engine itself never uses error for control flow.
func (r Result) Error() string {
	return r.String()
}
