package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/codec"
	"github.com/viralvaultgg/solana-program/internal/core/ledger"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// TestDispatchBatchShardsByRaffle creates two independent raffles, then
// replays buy_tickets against each concurrently through DispatchBatch,
// confirming both shards commit independently without corrupting each
// other's ledger state.
func TestDispatchBatchShardsByRaffle(t *testing.T) {
	store := ledger.NewStore()
	admin := testAddress("admin")
	payout := testAddress("payout")
	programID := testAddress("program")

	ctx := newTestContext(store, 1_000, admin)
	res, err := Dispatch(ctx, Accounts{RoleSigner: admin}, instructionPayload(IDInitConfig, func(e *codec.Encoder) {
		e.PutFixed(admin[:])
		e.PutFixed(payout[:])
	}))
	require.NoError(t, err)
	require.Equal(t, raffle.Success, res)

	for i := 0; i < 2; i++ {
		res, err := Dispatch(ctx, Accounts{RoleSigner: admin}, instructionPayload(IDCreateRaffle, func(e *codec.Encoder) {
			e.PutString("https://example.com/metadata.json")
			e.PutU64(100_000_000)
			e.PutI64(1_000 + 10_000)
			e.PutU64(1)
			e.PutOptionU64(nil)
		}))
		require.NoError(t, err)
		require.Equal(t, raffle.Success, res)
	}

	raffle0, _, err := keylet.Raffle(programID, 0)
	require.NoError(t, err)
	raffle1, _, err := keylet.Raffle(programID, 1)
	require.NoError(t, err)

	buyers := make([]address.Address, 2)
	items := make([]BatchItem, 0, 4)
	for i, raffleKeylet := range []keylet.Keylet{raffle0, raffle1} {
		buyer := testAddress("buyer" + string(rune('A'+i)))
		buyers[i] = buyer
		store.SetBalance(buyer, 10_000_000_000)

		items = append(items,
			BatchItem{
				Accounts: Accounts{RoleSigner: buyer, RoleRaffle: raffleKeylet.Address},
				Raw:      instructionPayload(IDInitTicketBalance, nil2),
			},
			BatchItem{
				Accounts: Accounts{RoleSigner: buyer, RoleRaffle: raffleKeylet.Address},
				Raw: instructionPayload(IDBuyTickets, func(e *codec.Encoder) {
					e.PutU64(2)
					e.PutFixed([]byte("seedAAAA"))
				}),
			},
		)
	}

	outcomes := DispatchBatch(func(index int, item BatchItem) *raffle.ApplyContext {
		return newTestContext(store, 1_000, item.Accounts[RoleSigner])
	}, items)

	require.Len(t, outcomes, 4)
	for _, o := range outcomes {
		require.NoError(t, o.Err)
		require.Equal(t, raffle.Success, o.Result)
	}

	bal0, _, err := keylet.TicketBalance(programID, raffle0.Address, buyers[0])
	require.NoError(t, err)
	bal1, _, err := keylet.TicketBalance(programID, raffle1.Address, buyers[1])
	require.NoError(t, err)
	require.True(t, store.Exists(bal0))
	require.True(t, store.Exists(bal1))
}
