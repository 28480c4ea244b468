package raffle

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/codec"
)

// TicketBalance is the per-(raffle,buyer) record at seed
// ("ticket_balance", raffle_address, owner_key) — spec §3. Its
// TicketCount must always equal the sum of this owner's Entry.TicketCount
// values on the raffle (invariant checked by callers, not enforced here).
type TicketBalance struct {
	Owner       address.Address
	TicketCount uint64
	Bump        uint8
}

func (b *TicketBalance) Encode() []byte {
	return codec.NewEncoder(codec.DiscTicketBalance).
		PutFixed(b.Owner.Bytes()).
		PutU64(b.TicketCount).
		PutU8(b.Bump).
		Bytes()
}

func DecodeTicketBalance(data []byte) (*TicketBalance, error) {
	d, err := codec.NewDecoder(data, codec.DiscTicketBalance)
	if err != nil {
		return nil, err
	}
	owner, _ := address.FromBytes(d.Fixed(address.Size))
	b := &TicketBalance{Owner: owner, TicketCount: d.U64(), Bump: d.U8()}
	if err := d.Finish(); err != nil {
		return nil, err
	}
	return b, nil
}
