package raffle

import "github.com/viralvaultgg/solana-program/internal/codec"

// WinnerData is the record at seed ("winner_data", raffle_address,
// winner_key) — spec §3, created exactly once by submit_winner_data and
// immutable thereafter.
type WinnerData struct {
	Data string
}

func (w *WinnerData) Encode() []byte {
	return codec.NewEncoder(codec.DiscWinnerData).
		PutString(w.Data).
		Bytes()
}

func DecodeWinnerData(data []byte) (*WinnerData, error) {
	d, err := codec.NewDecoder(data, codec.DiscWinnerData)
	if err != nil {
		return nil, err
	}
	w := &WinnerData{Data: d.String()}
	if err := d.Finish(); err != nil {
		return nil, err
	}
	return w, nil
}
