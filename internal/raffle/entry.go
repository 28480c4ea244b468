package raffle

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/codec"
)

// Entry is a single purchase record at seed ("entry", raffle_address,
// entry_seed_8B) — spec §3. Entries for one raffle partition the
// half-open interval [0, current_tickets) contiguously in creation
// order; this record has no persisted bump (see raffle.go for why).
type Entry struct {
	Raffle         address.Address
	Owner          address.Address
	TicketCount    uint64
	TicketStartIndex uint64
	Seed           [8]byte
}

// Contains reports whether ticket is inside this entry's ticket interval
// [TicketStartIndex, TicketStartIndex+TicketCount).
func (e *Entry) Contains(ticket uint64) bool {
	return ticket >= e.TicketStartIndex && ticket < e.TicketStartIndex+e.TicketCount
}

func (e *Entry) Encode() []byte {
	return codec.NewEncoder(codec.DiscEntry).
		PutFixed(e.Raffle.Bytes()).
		PutFixed(e.Owner.Bytes()).
		PutU64(e.TicketCount).
		PutU64(e.TicketStartIndex).
		PutFixed(e.Seed[:]).
		Bytes()
}

func DecodeEntry(data []byte) (*Entry, error) {
	d, err := codec.NewDecoder(data, codec.DiscEntry)
	if err != nil {
		return nil, err
	}
	raffle, _ := address.FromBytes(d.Fixed(address.Size))
	owner, _ := address.FromBytes(d.Fixed(address.Size))
	e := &Entry{Raffle: raffle, Owner: owner}
	e.TicketCount = d.U64()
	e.TicketStartIndex = d.U64()
	copy(e.Seed[:], d.Fixed(8))
	if err := d.Finish(); err != nil {
		return nil, err
	}
	return e, nil
}
