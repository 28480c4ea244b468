package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// RequireSuccess asserts that res is raffle.Success.
func RequireSuccess(t *testing.T, res raffle.Result) {
	t.Helper()
	require.Equal(t, raffle.Success, res, "expected success, got %s", res)
}

// RequireResult asserts that res matches expected exactly.
func RequireResult(t *testing.T, expected, res raffle.Result) {
	t.Helper()
	require.Equal(t, expected, res, "expected %s, got %s", expected, res)
}

// RequireBalance asserts that addr holds the expected lamport balance.
func RequireBalance(t *testing.T, env *TestEnv, addr address.Address, expected uint64) {
	t.Helper()
	actual := env.Balance(addr)
	require.Equal(t, expected, actual,
		"balance mismatch: expected %d lamports, got %d lamports", expected, actual)
}

// RequireAccountExists asserts that a record is present at k.
func RequireAccountExists(t *testing.T, env *TestEnv, k keylet.Keylet) {
	t.Helper()
	require.True(t, env.Exists(k), "expected account to exist at %x, but it does not", k.Address)
}

// RequireAccountNotExists asserts that no record is present at k.
func RequireAccountNotExists(t *testing.T, env *TestEnv, k keylet.Keylet) {
	t.Helper()
	require.False(t, env.Exists(k), "expected no account at %x, but one exists", k.Address)
}

// AssertBalanceChange runs fn and asserts addr's lamport balance changed
// by exactly expectedChange (which may be negative).
func AssertBalanceChange(t *testing.T, env *TestEnv, addr address.Address, expectedChange int64, fn func()) {
	t.Helper()
	before := env.Balance(addr)
	fn()
	after := env.Balance(addr)

	actualChange := int64(after) - int64(before)
	require.Equal(t, expectedChange, actualChange,
		"balance change mismatch: expected %d lamports, got %d (before: %d, after: %d)",
		expectedChange, actualChange, before, after)
}

// AssertNoBalanceChange runs fn and asserts addr's lamport balance is unchanged.
func AssertNoBalanceChange(t *testing.T, env *TestEnv, addr address.Address, fn func()) {
	t.Helper()
	AssertBalanceChange(t, env, addr, 0, fn)
}
