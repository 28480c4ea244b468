package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/codec"
	"github.com/viralvaultgg/solana-program/internal/core/ledger"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/entropy"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

func testAddress(label string) address.Address {
	var a address.Address
	copy(a[:], []byte("test-addr-"+label+"--------------"))
	return a
}

func newTestContext(store *ledger.Store, now int64, signers ...address.Address) *raffle.ApplyContext {
	signerSet := make(map[address.Address]bool, len(signers))
	for _, s := range signers {
		signerSet[s] = true
	}
	return &raffle.ApplyContext{
		View:      store,
		ProgramID: testAddress("program"),
		Now:       now,
		Signers:   signerSet,
		Rent:      raffle.FixedRentModel{BaseLamports: 1000, LamportsPerByte: 1},
		Entropy:   entropy.NewSource(64),
	}
}

func instructionPayload(id ID, build func(*codec.Encoder)) []byte {
	e := codec.NewEncoder(codec.Discriminator(id))
	build(e)
	return e.Bytes()
}

func TestDispatchHappyPathSingleBuyerClaim(t *testing.T) {
	store := ledger.NewStore()
	admin := testAddress("admin")
	buyer := testAddress("buyer")
	payout := testAddress("payout")
	store.SetBalance(buyer, 10_000_000_000)

	programID := testAddress("program")

	// init_config
	ctx := newTestContext(store, 1_000, admin)
	raw := instructionPayload(IDInitConfig, func(e *codec.Encoder) {
		e.PutFixed(admin[:])
		e.PutFixed(payout[:])
	})
	res, err := Dispatch(ctx, Accounts{RoleSigner: admin}, raw)
	require.NoError(t, err)
	require.Equal(t, raffle.Success, res)

	// create_raffle
	raw = instructionPayload(IDCreateRaffle, func(e *codec.Encoder) {
		e.PutString("https://example.com/metadata.json")
		e.PutU64(100_000_000)
		e.PutI64(1_000 + 10_000)
		e.PutU64(1)
		e.PutOptionU64(nil)
	})
	res, err = Dispatch(ctx, Accounts{RoleSigner: admin}, raw)
	require.NoError(t, err)
	require.Equal(t, raffle.Success, res)

	raffleKeylet, _, err := keylet.Raffle(programID, 0)
	require.NoError(t, err)
	raffleAddr := raffleKeylet.Address

	// init_ticket_balance
	buyerCtx := newTestContext(store, 1_000, buyer)
	raw = instructionPayload(IDInitTicketBalance, nil2)
	res, err = Dispatch(buyerCtx, Accounts{RoleSigner: buyer, RoleRaffle: raffleAddr}, raw)
	require.NoError(t, err)
	require.Equal(t, raffle.Success, res)

	// buy_tickets
	raw = instructionPayload(IDBuyTickets, func(e *codec.Encoder) {
		e.PutU64(3)
		e.PutFixed([]byte("seed0001"))
	})
	res, err = Dispatch(buyerCtx, Accounts{RoleSigner: buyer, RoleRaffle: raffleAddr}, raw)
	require.NoError(t, err)
	require.Equal(t, raffle.Success, res)

	// draw_winning_ticket, past end_time
	drawCtx := newTestContext(store, 1_000+10_001)
	raw = instructionPayload(IDDrawWinningTicket, func(e *codec.Encoder) {
		e.PutU64(8)
		for i := 0; i < 8; i++ {
			e.PutFixed(make([]byte, 32))
		}
	})
	res, err = Dispatch(drawCtx, Accounts{RoleRaffle: raffleAddr, RoleSlotHashes: address.SlotHashesSysvar}, raw)
	require.NoError(t, err)
	require.Equal(t, raffle.Success, res)

	// set_winner
	raw = instructionPayload(IDSetWinner, func(e *codec.Encoder) {
		e.PutFixed([]byte("seed0001"))
	})
	res, err = Dispatch(drawCtx, Accounts{RoleRaffle: raffleAddr}, raw)
	require.NoError(t, err)
	require.Equal(t, raffle.Success, res)

	// submit_winner_data
	raw = instructionPayload(IDSubmitWinnerData, func(e *codec.Encoder) {
		e.PutString("shipping-address-payload")
	})
	claimCtx := newTestContext(store, 1_000+10_002, buyer)
	res, err = Dispatch(claimCtx, Accounts{RoleSigner: buyer, RoleRaffle: raffleAddr}, raw)
	require.NoError(t, err)
	require.Equal(t, raffle.Success, res)

	// withdraw_from_treasury
	raw = instructionPayload(IDWithdrawFromTreasury, nil2)
	res, err = Dispatch(ctx, Accounts{RoleSigner: admin, RoleRaffle: raffleAddr, RolePayoutAuthority: payout}, raw)
	require.NoError(t, err)
	require.Equal(t, raffle.Success, res)
	require.Greater(t, store.Balance(payout), uint64(0))
}

func TestDispatchUnknownInstruction(t *testing.T) {
	store := ledger.NewStore()
	ctx := newTestContext(store, 1_000)
	raw := make([]byte, 8)
	_, err := Dispatch(ctx, Accounts{}, raw)
	require.Error(t, err)
}

func TestDispatchMissingAccountRole(t *testing.T) {
	store := ledger.NewStore()
	ctx := newTestContext(store, 1_000)
	raw := instructionPayload(IDInitTicketBalance, nil2)
	_, err := Dispatch(ctx, Accounts{RoleSigner: testAddress("buyer")}, raw)
	require.Error(t, err)
}

func nil2(*codec.Encoder) {}
