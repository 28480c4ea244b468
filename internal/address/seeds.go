package address

import "encoding/binary"

// Seed byte layouts, exact per spec §6: "config"; "raffle" || raffle_id_le_u64;
// "treasury" || raffle_address_32B; "ticket_balance" || raffle_address_32B ||
// owner_32B; "entry" || raffle_address_32B || entry_seed_8B; "winner_data" ||
// raffle_address_32B || winner_32B.

func ConfigSeeds() [][]byte {
	return [][]byte{[]byte("config")}
}

func RaffleSeeds(raffleID uint64) [][]byte {
	var id [8]byte
	binary.LittleEndian.PutUint64(id[:], raffleID)
	return [][]byte{[]byte("raffle"), id[:]}
}

func TreasurySeeds(raffle Address) [][]byte {
	return [][]byte{[]byte("treasury"), raffle.Bytes()}
}

func TicketBalanceSeeds(raffle, owner Address) [][]byte {
	return [][]byte{[]byte("ticket_balance"), raffle.Bytes(), owner.Bytes()}
}

func EntrySeeds(raffle Address, entrySeed [8]byte) [][]byte {
	return [][]byte{[]byte("entry"), raffle.Bytes(), entrySeed[:]}
}

func WinnerDataSeeds(raffle, winner Address) [][]byte {
	return [][]byte{[]byte("winner_data"), raffle.Bytes(), winner.Bytes()}
}
