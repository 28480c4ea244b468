package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/viralvaultgg/solana-program/internal/codec"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/engine"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

func TestNewAccountIsDeterministic(t *testing.T) {
	alice1 := NewAccount("alice")
	alice2 := NewAccount("alice")
	require.Equal(t, alice1.Address, alice2.Address)
	require.Equal(t, alice1.Keypair.Private, alice2.Keypair.Private)

	bob := NewAccount("bob")
	require.NotEqual(t, alice1.Address, bob.Address)
}

func payload(id engine.ID, build func(*codec.Encoder)) []byte {
	e := codec.NewEncoder(codec.Discriminator(id))
	if build != nil {
		build(e)
	}
	return e.Bytes()
}

// TestExpiredRaffleRefund exercises the "expired, under threshold, buyer
// reclaims" scenario from spec §8 end to end through the TestEnv harness.
func TestExpiredRaffleRefund(t *testing.T) {
	program := NewAccount("program").Address
	env := NewTestEnv(t, program)

	admin := NewAccount("admin")
	buyer := NewAccount("buyer")
	env.Fund(Sol(10), admin, buyer)

	res, err := env.Dispatch(engine.Accounts{engine.RoleSigner: admin.Address}, payload(engine.IDInitConfig, func(e *codec.Encoder) {
		e.PutFixed(admin.Address[:])
		e.PutFixed(admin.Address[:])
	}))
	require.NoError(t, err)
	RequireSuccess(t, res)

	res, err = env.Dispatch(engine.Accounts{engine.RoleSigner: admin.Address}, payload(engine.IDCreateRaffle, func(e *codec.Encoder) {
		e.PutString("https://example.com/raffle.json")
		e.PutU64(Sol(1))
		e.PutI64(env.Now().Add(2 * time.Hour).Unix())
		e.PutU64(100) // min_tickets far above what gets sold
		e.PutOptionU64(nil)
	}))
	require.NoError(t, err)
	RequireSuccess(t, res)

	raffleKeylet, _, err := keylet.Raffle(program, 0)
	require.NoError(t, err)

	res, err = env.Dispatch(engine.Accounts{engine.RoleSigner: buyer.Address, engine.RoleRaffle: raffleKeylet.Address}, payload(engine.IDInitTicketBalance, nil))
	require.NoError(t, err)
	RequireSuccess(t, res)

	res, err = env.Dispatch(engine.Accounts{engine.RoleSigner: buyer.Address, engine.RoleRaffle: raffleKeylet.Address}, payload(engine.IDBuyTickets, func(e *codec.Encoder) {
		e.PutU64(2)
		e.PutFixed([]byte("seedAAAA"))
	}))
	require.NoError(t, err)
	RequireSuccess(t, res)

	env.AdvanceTime(3 * time.Hour)

	res, err = env.Dispatch(engine.Accounts{engine.RoleRaffle: raffleKeylet.Address}, payload(engine.IDExpireRaffle, nil))
	require.NoError(t, err)
	RequireSuccess(t, res)

	balanceKeylet, _, err := keylet.TicketBalance(program, raffleKeylet.Address, buyer.Address)
	require.NoError(t, err)
	balanceRent := env.Store.Balance(balanceKeylet.Address)
	refund := Sol(2) + balanceRent

	AssertBalanceChange(t, env, buyer.Address, int64(refund), func() {
		res, err = env.Dispatch(engine.Accounts{engine.RoleSigner: buyer.Address, engine.RoleRaffle: raffleKeylet.Address}, payload(engine.IDReclaimExpiredTickets, nil))
		require.NoError(t, err)
		RequireSuccess(t, res)
	})

	RequireAccountNotExists(t, env, balanceKeylet)
}

// TestThresholdNotMetRejectsExpire confirms expire_raffle refuses to fire
// before end_time with RaffleNotEnded, even though the raffle (min_tickets
// 1, no tickets sold) has not met its threshold.
func TestThresholdNotMetRejectsExpire(t *testing.T) {
	program := NewAccount("program").Address
	env := NewTestEnv(t, program)

	admin := NewAccount("admin")
	env.Sign(admin.Address)

	res, err := env.Dispatch(engine.Accounts{engine.RoleSigner: admin.Address}, payload(engine.IDInitConfig, func(e *codec.Encoder) {
		e.PutFixed(admin.Address[:])
		e.PutFixed(admin.Address[:])
	}))
	require.NoError(t, err)
	RequireSuccess(t, res)

	res, err = env.Dispatch(engine.Accounts{engine.RoleSigner: admin.Address}, payload(engine.IDCreateRaffle, func(e *codec.Encoder) {
		e.PutString("https://example.com/raffle.json")
		e.PutU64(Sol(1))
		e.PutI64(env.Now().Add(time.Hour).Unix())
		e.PutU64(1)
		e.PutOptionU64(nil)
	}))
	require.NoError(t, err)
	RequireSuccess(t, res)

	raffleKeylet, _, err := keylet.Raffle(program, 0)
	require.NoError(t, err)

	res, err = env.Dispatch(engine.Accounts{engine.RoleRaffle: raffleKeylet.Address}, payload(engine.IDExpireRaffle, nil))
	require.NoError(t, err)
	RequireResult(t, raffle.RaffleNotEnded, res)
}
