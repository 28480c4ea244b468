package testing

import (
	"github.com/viralvaultgg/solana-program/internal/address"
	ed25519 "github.com/viralvaultgg/solana-program/internal/crypto/algorithms/ed25519"
)

// Account is a deterministic test signer: Address is the public key used
// directly as a program account address; Keypair carries the signing key
// for tests that exercise signature verification.
type Account struct {
	Name    string
	Address address.Address
	Keypair *ed25519.Keypair
}

// NewAccount derives a reproducible test account from name. The same name
// always yields the same keypair, so fixtures referencing "alice" or
// "buyer" by name stay stable across test runs.
func NewAccount(name string) *Account {
	kp, err := ed25519.DeriveKeypair([]byte(name))
	if err != nil {
		panic("testing: failed to derive keypair for account " + name + ": " + err.Error())
	}
	return &Account{
		Name:    name,
		Address: address.Address(kp.Public),
		Keypair: kp,
	}
}
