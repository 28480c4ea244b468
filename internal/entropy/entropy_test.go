package entropy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viralvaultgg/solana-program/internal/address"
)

func window(n int, fill byte) []SlotHash {
	out := make([]SlotHash, n)
	for i := range out {
		out[i][0] = fill
		out[i][1] = byte(i)
	}
	return out
}

func TestDrawIsDeterministicAndInRange(t *testing.T) {
	s := NewSource(16)
	var raffle address.Address
	raffle[0] = 9

	r1, err := s.Draw(raffle, window(MinSlotHashes, 1), 37, 1000)
	require.NoError(t, err)
	require.Less(t, r1, uint64(37))

	r2, err := s.Draw(raffle, window(MinSlotHashes, 1), 37, 1000)
	require.NoError(t, err)
	require.Equal(t, r1, r2)
}

func TestDrawRejectsTooFewSlotHashes(t *testing.T) {
	s := NewSource(16)
	var raffle address.Address
	_, err := s.Draw(raffle, window(MinSlotHashes-1, 1), 10, 1)
	require.ErrorIs(t, err, ErrInsufficientSlotHashes)
}

func TestDrawRejectsZeroTickets(t *testing.T) {
	s := NewSource(16)
	var raffle address.Address
	_, err := s.Draw(raffle, window(MinSlotHashes, 1), 0, 1)
	require.ErrorIs(t, err, ErrZeroTickets)
}

func TestDrawVariesWithInputs(t *testing.T) {
	s := NewSource(16)
	var raffleA, raffleB address.Address
	raffleB[0] = 1

	ra, err := s.Draw(raffleA, window(MinSlotHashes, 5), 1_000_000, 42)
	require.NoError(t, err)
	rb, err := s.Draw(raffleB, window(MinSlotHashes, 5), 1_000_000, 42)
	require.NoError(t, err)
	require.NotEqual(t, ra, rb)
}
