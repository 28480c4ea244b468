package keylet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/entry"
)

func testProgramID() address.Address {
	var a address.Address
	for i := range a {
		a[i] = byte(i + 7)
	}
	return a
}

func TestConfigIsSingleton(t *testing.T) {
	programID := testProgramID()
	k1, _, err := Config(programID)
	require.NoError(t, err)
	k2, _, err := Config(programID)
	require.NoError(t, err)
	require.Equal(t, k1, k2)
	require.Equal(t, entry.TypeConfig, k1.Type)
}

func TestTreasuryDerivesFromRaffle(t *testing.T) {
	programID := testProgramID()
	raffleKeylet, _, err := Raffle(programID, 42)
	require.NoError(t, err)

	treasuryKeylet, _, err := Treasury(programID, raffleKeylet.Address)
	require.NoError(t, err)
	require.Equal(t, entry.TypeTreasury, treasuryKeylet.Type)

	otherRaffleKeylet, _, err := Raffle(programID, 43)
	require.NoError(t, err)
	otherTreasuryKeylet, _, err := Treasury(programID, otherRaffleKeylet.Address)
	require.NoError(t, err)

	require.NotEqual(t, treasuryKeylet.Address, otherTreasuryKeylet.Address)
}

func TestEntrySeedDistinguishesEntries(t *testing.T) {
	programID := testProgramID()
	raffleKeylet, _, err := Raffle(programID, 1)
	require.NoError(t, err)

	var seedA, seedB [8]byte
	seedA[0] = 1
	seedB[0] = 2

	entryA, _, err := Entry(programID, raffleKeylet.Address, seedA)
	require.NoError(t, err)
	entryB, _, err := Entry(programID, raffleKeylet.Address, seedB)
	require.NoError(t, err)

	require.NotEqual(t, entryA.Address, entryB.Address)
}
