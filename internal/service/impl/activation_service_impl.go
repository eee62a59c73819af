package impl

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

const activationTokenBytes = 20

type ActivationServiceImpl struct{}

func NewActivationService() *ActivationServiceImpl { return &ActivationServiceImpl{} }

// Generate returns a fresh random token and its digest. The raw value is
// emailed to the user; only the digest is stored.
func (a *ActivationServiceImpl) Generate() (raw, hash string, err error) {
	buf := make([]byte, activationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	return raw, a.Hash(raw), nil
}

// Hash is a plain SHA-256 digest. Activation tokens are single-use and
// high-entropy, so a slow password hash is not needed here.
func (a *ActivationServiceImpl) Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
