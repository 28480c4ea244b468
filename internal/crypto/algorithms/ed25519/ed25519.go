// Package ed25519 derives and exercises the keypairs behind raffle
// program signers. The 0xED key-type prefix and uppercase-hex wire
// convention some ledger protocols use are dropped since this program's
// keys are raw 32-byte Solana-style public keys (spec §1 collaborator
// (b): "signer verification on each transaction"), but the
// seed-expansion idiom (Sha512Half a seed into key material, then
// crypto/ed25519.GenerateKey from it) is kept as-is.
package ed25519

import (
	"bytes"
	"crypto/ed25519"
	"errors"

	crypto "github.com/viralvaultgg/solana-program/internal/crypto/common"
)

var (
	ErrInvalidPrivateKey = errors.New("ed25519: invalid private key length")
	ErrInvalidPublicKey  = errors.New("ed25519: invalid public key length")
)

// Keypair is a deterministically-derived ed25519 signer: Public is the
// 32-byte value used directly as an address.Address, Private is the
// expanded signing key.
type Keypair struct {
	Public  [32]byte
	Private ed25519.PrivateKey
}

// DeriveKeypair expands seed via Sha512Half into ed25519 key material.
// The same seed always yields the same keypair, which test account
// helpers rely on for reproducible fixtures.
func DeriveKeypair(seed []byte) (*Keypair, error) {
	keyMaterial := crypto.Sha512Half(seed)
	pub, priv, err := ed25519.GenerateKey(bytes.NewReader(keyMaterial[:]))
	if err != nil {
		return nil, err
	}
	kp := &Keypair{Private: priv}
	copy(kp.Public[:], pub)
	return kp, nil
}

// Sign produces a raw 64-byte signature over message.
func Sign(priv ed25519.PrivateKey, message []byte) []byte {
	return ed25519.Sign(priv, message)
}

// Verify reports whether signature is a valid ed25519 signature over
// message under pub.
func Verify(pub [32]byte, message, signature []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), message, signature)
}
