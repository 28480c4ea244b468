// Package engine implements instruction dispatch: a tag match on an
// 8-byte discriminator, registered against a decode function per
// instruction ID, wrapping a LedgerView the way any tagged-variant
// dispatcher would.
package engine

import "fmt"

// ID is the instruction-kind discriminator, the leading 8 bytes of every
// instruction payload (spec §9).
type ID uint64

const (
	IDInitConfig ID = iota + 1
	IDCreateRaffle
	IDInitTicketBalance
	IDBuyTickets
	IDDrawWinningTicket
	IDSetWinner
	IDSubmitWinnerData
	IDWithdrawFromTreasury
	IDExpireRaffle
	IDReclaimExpiredTickets
	IDUpgradeConfig
)

var idNames = map[ID]string{
	IDInitConfig:            "init_config",
	IDCreateRaffle:          "create_raffle",
	IDInitTicketBalance:     "init_ticket_balance",
	IDBuyTickets:            "buy_tickets",
	IDDrawWinningTicket:     "draw_winning_ticket",
	IDSetWinner:             "set_winner",
	IDSubmitWinnerData:      "submit_winner_data",
	IDWithdrawFromTreasury:  "withdraw_from_treasury",
	IDExpireRaffle:          "expire_raffle",
	IDReclaimExpiredTickets: "reclaim_expired_tickets",
	IDUpgradeConfig:         "upgrade_config",
}

func (id ID) String() string {
	if s, ok := idNames[id]; ok {
		return s
	}
	return fmt.Sprintf("ID(%d)", uint64(id))
}
