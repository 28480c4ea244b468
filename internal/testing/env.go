// Package testing provides test infrastructure for the raffle program:
// a deterministic ledger-backed environment, reproducible test accounts,
// and assertion helpers, scoped to this program's single domain (no
// trust lines, offers, regular keys, or multi-signing — this program
// has none of those).
package testing

import (
	"testing"
	"time"

	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger"
	"github.com/viralvaultgg/solana-program/internal/core/ledger/keylet"
	"github.com/viralvaultgg/solana-program/internal/engine"
	"github.com/viralvaultgg/solana-program/internal/entropy"
	"github.com/viralvaultgg/solana-program/internal/raffle"
)

// TestEnv wires a Store, a manual clock, and a fixed program ID into
// something a test can submit instructions against without building an
// ApplyContext by hand every time.
type TestEnv struct {
	t *testing.T

	Store     *ledger.Store
	ProgramID address.Address
	Clock     *ManualClock
	Rent      raffle.RentModel

	entropy *entropy.Source
	signers map[address.Address]bool
}

// NewTestEnv builds a fresh, empty ledger environment for program.
func NewTestEnv(t *testing.T, program address.Address) *TestEnv {
	t.Helper()
	return &TestEnv{
		t:         t,
		Store:     ledger.NewStore(),
		ProgramID: program,
		Clock:     NewManualClock(),
		Rent:      raffle.FixedRentModel{BaseLamports: 1_000_000, LamportsPerByte: 1_000},
		entropy:   entropy.NewSource(256),
		signers:   make(map[address.Address]bool),
	}
}

// Fund sets each account's lamport balance to lamports (replacing any
// earlier balance) and marks it a signer
// for subsequent Dispatch calls — the test-harness equivalent of a
// funded, present transaction signer.
func (e *TestEnv) Fund(lamports uint64, accounts ...*Account) {
	e.t.Helper()
	for _, acc := range accounts {
		e.Store.SetBalance(acc.Address, lamports)
		e.signers[acc.Address] = true
	}
}

// Sign marks addr as a signer for subsequent Dispatch calls without
// crediting any balance, for accounts that only need to authorize (e.g.
// a management authority that never holds lamports itself).
func (e *TestEnv) Sign(addr address.Address) {
	e.signers[addr] = true
}

// Dispatch builds an ApplyContext from the environment's current clock
// and signer set and runs raw through engine.Dispatch.
func (e *TestEnv) Dispatch(accts engine.Accounts, raw []byte) (raffle.Result, error) {
	e.t.Helper()
	ctx := &raffle.ApplyContext{
		View:      e.Store,
		ProgramID: e.ProgramID,
		Now:       e.Clock.Now().Unix(),
		Signers:   e.signers,
		Rent:      e.Rent,
		Entropy:   e.entropy,
	}
	return engine.Dispatch(ctx, accts, raw)
}

// Balance returns addr's current lamport balance.
func (e *TestEnv) Balance(addr address.Address) uint64 {
	return e.Store.Balance(addr)
}

// Exists reports whether a record is present at k.
func (e *TestEnv) Exists(k keylet.Keylet) bool {
	return e.Store.Exists(k)
}

// LedgerEntry returns the raw bytes stored at k, if any.
func (e *TestEnv) LedgerEntry(k keylet.Keylet) ([]byte, bool) {
	return e.Store.Read(k)
}

// Now returns the environment's current manual-clock time.
func (e *TestEnv) Now() time.Time {
	return e.Clock.Now()
}

// AdvanceTime moves the manual clock forward by d.
func (e *TestEnv) AdvanceTime(d time.Duration) {
	e.Clock.Advance(d)
}

// SetTime sets the manual clock to t.
func (e *TestEnv) SetTime(t time.Time) {
	e.Clock.Set(t)
}
