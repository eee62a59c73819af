package impl

import (
	"encoding/hex"
	"testing"
)

func TestActivationGenerate(t *testing.T) {
	svc := NewActivationService()

	raw, hash, err := svc.Generate()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(raw) != activationTokenBytes*2 {
		t.Fatalf("raw token must encode %d random bytes, got %q", activationTokenBytes, raw)
	}
	if _, err := hex.DecodeString(raw); err != nil {
		t.Fatalf("raw token must be hex: %v", err)
	}
	if hash == raw {
		t.Fatal("hash must differ from the raw token")
	}
}

func TestActivationHashRoundTrip(t *testing.T) {
	svc := NewActivationService()

	raw, hash, err := svc.Generate()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	// The digest computed at consumption time must equal the one computed at
	// generation time.
	if svc.Hash(raw) != hash {
		t.Fatal("hash is not deterministic for the same raw token")
	}
	if svc.Hash(raw+"x") == hash {
		t.Fatal("different inputs must not collide")
	}
}

func TestActivationTokensAreUnique(t *testing.T) {
	svc := NewActivationService()

	seen := map[string]bool{}
	for i := 0; i < 64; i++ {
		raw, _, err := svc.Generate()
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if seen[raw] {
			t.Fatalf("duplicate token generated: %q", raw)
		}
		seen[raw] = true
	}
}
