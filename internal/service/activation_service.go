package service

// ActivationService mints and re-derives one-time account activation tokens.
// Only the hash is ever persisted; the raw value goes out by email.
type ActivationService interface {
	Generate() (raw, hash string, err error)
	Hash(raw string) string
}
