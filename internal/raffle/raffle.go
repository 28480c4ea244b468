package raffle

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/codec"
)

// State is the Raffle lifecycle tag, spec §4.2. The compiler's exhaustive
// switch is the safeguard against a forgotten transition, per spec §9.
type State uint8

const (
	StateOpen State = iota
	StateDrawing
	StateDrawn
	StateClaimed
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "Open"
	case StateDrawing:
		return "Drawing"
	case StateDrawn:
		return "Drawn"
	case StateClaimed:
		return "Claimed"
	case StateExpired:
		return "Expired"
	default:
		return "Unknown"
	}
}

// Raffle is the record at seed ("raffle", raffle_id_le_u64). Note
// raffle_id and a bump are deliberately NOT persisted fields: they are
// only needed to derive the address at creation time. Subsequent
// instructions reference the Raffle account directly and verify it via
// owner + discriminator, not seed re-derivation (see constraints.go).
type Raffle struct {
	MetadataUri    string
	TicketPrice    uint64
	MinTickets     uint64
	MaxTickets     *uint64
	CurrentTickets uint64
	CreationTime   int64
	EndTime        int64
	Treasury       address.Address
	State          State
	WinningTicket  *uint64
	WinnerAddress  *address.Address
}

func (r *Raffle) Encode() []byte {
	e := codec.NewEncoder(codec.DiscRaffle).
		PutString(r.MetadataUri).
		PutU64(r.TicketPrice).
		PutU64(r.MinTickets).
		PutOptionU64(r.MaxTickets).
		PutU64(r.CurrentTickets).
		PutI64(r.CreationTime).
		PutI64(r.EndTime).
		PutFixed(r.Treasury.Bytes()).
		PutU8(uint8(r.State)).
		PutOptionU64(r.WinningTicket)
	var winnerBytes []byte
	if r.WinnerAddress != nil {
		winnerBytes = r.WinnerAddress.Bytes()
	}
	e.PutOptionFixed(winnerBytes)
	return e.Bytes()
}

func DecodeRaffle(data []byte) (*Raffle, error) {
	d, err := codec.NewDecoder(data, codec.DiscRaffle)
	if err != nil {
		return nil, err
	}
	r := &Raffle{}
	r.MetadataUri = d.String()
	r.TicketPrice = d.U64()
	r.MinTickets = d.U64()
	r.MaxTickets = d.OptionU64()
	r.CurrentTickets = d.U64()
	r.CreationTime = d.I64()
	r.EndTime = d.I64()
	treasury, _ := address.FromBytes(d.Fixed(address.Size))
	r.Treasury = treasury
	r.State = State(d.U8())
	r.WinningTicket = d.OptionU64()
	if wb := d.OptionFixed(address.Size); wb != nil {
		winner, _ := address.FromBytes(wb)
		r.WinnerAddress = &winner
	}
	if err := d.Finish(); err != nil {
		return nil, err
	}
	return r, nil
}
