package raffle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viralvaultgg/solana-program/internal/address"
)

func recordTestAddress(b byte) address.Address {
	var a address.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func TestConfigEncodeDecodeRoundTrip(t *testing.T) {
	c := &Config{
		ManagementAuthority: recordTestAddress(1),
		PayoutAuthority:     recordTestAddress(2),
		UpgradeAuthority:    recordTestAddress(3),
		RaffleCounter:       42,
		Bump:                250,
	}
	got, err := DecodeConfig(c.Encode())
	require.NoError(t, err)
	require.Equal(t, c, got)
}

func TestRaffleEncodeDecodeRoundTripWithOptionals(t *testing.T) {
	maxTickets := uint64(500)
	winningTicket := uint64(7)
	winner := recordTestAddress(9)
	r := &Raffle{
		MetadataUri:    "https://example.com/raffle.json",
		TicketPrice:    1_000_000,
		MinTickets:     10,
		MaxTickets:     &maxTickets,
		CurrentTickets: 12,
		CreationTime:   1_700_000_000,
		EndTime:        1_700_100_000,
		Treasury:       recordTestAddress(4),
		State:          StateDrawn,
		WinningTicket:  &winningTicket,
		WinnerAddress:  &winner,
	}
	got, err := DecodeRaffle(r.Encode())
	require.NoError(t, err)
	require.Equal(t, r, got)
}

func TestRaffleEncodeDecodeRoundTripWithoutOptionals(t *testing.T) {
	r := &Raffle{
		MetadataUri:    "https://example.com/raffle.json",
		TicketPrice:    1_000_000,
		MinTickets:     10,
		CurrentTickets: 0,
		CreationTime:   1_700_000_000,
		EndTime:        1_700_100_000,
		Treasury:       recordTestAddress(4),
		State:          StateOpen,
	}
	got, err := DecodeRaffle(r.Encode())
	require.NoError(t, err)
	require.Equal(t, r, got)
}

func TestTreasuryEncodeDecodeRoundTrip(t *testing.T) {
	tr := &Treasury{Raffle: recordTestAddress(5), Bump: 254}
	got, err := DecodeTreasury(tr.Encode())
	require.NoError(t, err)
	require.Equal(t, tr, got)
}

func TestTicketBalanceEncodeDecodeRoundTrip(t *testing.T) {
	b := &TicketBalance{Owner: recordTestAddress(6), TicketCount: 3, Bump: 253}
	got, err := DecodeTicketBalance(b.Encode())
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestEntryEncodeDecodeRoundTrip(t *testing.T) {
	e := &Entry{
		Raffle:           recordTestAddress(7),
		Owner:            recordTestAddress(8),
		TicketCount:      5,
		TicketStartIndex: 10,
		Seed:             [8]byte{1, 2, 3, 4, 5, 6, 7, 8},
	}
	got, err := DecodeEntry(e.Encode())
	require.NoError(t, err)
	require.Equal(t, e, got)
	require.True(t, got.Contains(10))
	require.True(t, got.Contains(14))
	require.False(t, got.Contains(15))
	require.False(t, got.Contains(9))
}

func TestWinnerDataEncodeDecodeRoundTrip(t *testing.T) {
	w := &WinnerData{Data: "shipping-address-payload"}
	got, err := DecodeWinnerData(w.Encode())
	require.NoError(t, err)
	require.Equal(t, w, got)
}

func TestDecodeConfigRejectsDiscriminatorMismatch(t *testing.T) {
	r := &Raffle{MetadataUri: "x", Treasury: recordTestAddress(1)}
	_, err := DecodeConfig(r.Encode())
	require.Error(t, err)
}
