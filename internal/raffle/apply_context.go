package raffle

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	"github.com/viralvaultgg/solana-program/internal/core/ledger"
	"github.com/viralvaultgg/solana-program/internal/entropy"
)

// RentModel answers the host's rent-exempt-minimum query for an account
// of a given serialized size, spec §1 collaborator (e): "rent-minimum
// queries." Exposed as an interface so tests can supply a trivial model.
type RentModel interface {
	ExemptMinimum(size int) uint64
}

// FixedRentModel charges a flat per-byte rate plus a base floor, a
// reasonable stand-in for the host's real rent curve.
type FixedRentModel struct {
	BaseLamports     uint64
	LamportsPerByte uint64
}

func (m FixedRentModel) ExemptMinimum(size int) uint64 {
	return m.BaseLamports + m.LamportsPerByte*uint64(size)
}

// ApplyContext bundles everything an instruction's Apply needs: ledger
// access, the clock, entropy source, rent model, and the set of keys
// that signed this transaction.
type ApplyContext struct {
	View ledger.LedgerView

	ProgramID address.Address

	// Now is the host-provided monotonic unix timestamp (spec §1
	// collaborator (c)).
	Now int64

	// Signers is the set of keys that signed the current transaction
	// (spec §1 collaborator (b): "signer verification on each
	// transaction").
	Signers map[address.Address]bool

	Rent RentModel

	Entropy *entropy.Source
}

// IsSigner reports whether addr signed the current transaction.
func (ctx *ApplyContext) IsSigner(addr address.Address) bool {
	return ctx.Signers[addr]
}
