package ed25519

import (
	"testing"
)

func TestDeriveKeypairDeterministic(t *testing.T) {
	seed := []byte("test seed for ed25519")

	a, err := DeriveKeypair(seed)
	if err != nil {
		t.Fatalf("DeriveKeypair: %v", err)
	}
	b, err := DeriveKeypair(seed)
	if err != nil {
		t.Fatalf("DeriveKeypair: %v", err)
	}

	if a.Public != b.Public {
		t.Errorf("same seed produced different public keys: %x vs %x", a.Public, b.Public)
	}
}

func TestSignAndVerify(t *testing.T) {
	kp, err := DeriveKeypair([]byte("test seed for ed25519"))
	if err != nil {
		t.Fatalf("DeriveKeypair: %v", err)
	}
	message := []byte("test message")

	sig := Sign(kp.Private, message)
	if !Verify(kp.Public, message, sig) {
		t.Error("signature failed to verify against the signing key's own public key")
	}
	if Verify(kp.Public, []byte("wrong message"), sig) {
		t.Error("signature verified against a different message")
	}
}

func TestDifferentSeedsDifferentKeys(t *testing.T) {
	a, err := DeriveKeypair([]byte("seed-a"))
	if err != nil {
		t.Fatalf("DeriveKeypair: %v", err)
	}
	b, err := DeriveKeypair([]byte("seed-b"))
	if err != nil {
		t.Fatalf("DeriveKeypair: %v", err)
	}
	if a.Public == b.Public {
		t.Error("distinct seeds produced the same public key")
	}
}
