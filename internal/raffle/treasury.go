package raffle

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/codec"
)

// Treasury is the per-raffle escrow at seed ("treasury", raffle_address)
// — spec §3. It holds lamports; the account's own lamport balance is
// tracked by the host, not this record, which only carries the back
// reference and bump used to re-verify it.
type Treasury struct {
	Raffle address.Address
	Bump   uint8
}

func (t *Treasury) Encode() []byte {
	return codec.NewEncoder(codec.DiscTreasury).
		PutFixed(t.Raffle.Bytes()).
		PutU8(t.Bump).
		Bytes()
}

func DecodeTreasury(data []byte) (*Treasury, error) {
	d, err := codec.NewDecoder(data, codec.DiscTreasury)
	if err != nil {
		return nil, err
	}
	raffle, _ := address.FromBytes(d.Fixed(address.Size))
	t := &Treasury{Raffle: raffle, Bump: d.U8()}
	if err := d.Finish(); err != nil {
		return nil, err
	}
	return t, nil
}
