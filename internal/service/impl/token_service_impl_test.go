package impl

import (
	"strings"
	"testing"
	"time"

	"quotes/internal/domain"

	"github.com/google/uuid"
)

func testUser() *domain.User {
	return &domain.User{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "adalove",
		Email:     "ada@example.com",
		Active:    true,
	}
}

func newTokenService(ttl time.Duration) *TokenServiceImpl {
	return NewTokenServiceHS256(TokenConfig{
		Issuer:     "quotes-test",
		TTL:        ttl,
		SigningKey: []byte("test-signing-key"),
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTokenService(time.Hour)
	user := testUser()

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("subject mismatch: %s vs %s", claims.UserID, user.ID)
	}
	if claims.FirstName != "Ada" || claims.LastName != "Lovelace" ||
		claims.Username != "adalove" || claims.Email != "ada@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenTamperedSignatureFails(t *testing.T) {
	svc := newTokenService(time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Verify(tampered); domain.KindOf(err) != domain.KindAuth {
		t.Fatalf("tampered token must fail verification, got %v", err)
	}
}

func TestTokenAlteredClaimsFail(t *testing.T) {
	svc := newTokenService(time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	other, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Payload from one token with the signature of another.
	a, b := strings.Split(token, "."), strings.Split(other, ".")
	spliced := a[0] + "." + a[1] + "." + b[2]

	if _, err := svc.Verify(spliced); domain.KindOf(err) != domain.KindAuth {
		t.Fatalf("claim-swapped token must fail verification, got %v", err)
	}
}

func TestTokenWrongKeyFails(t *testing.T) {
	token, err := newTokenService(time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	other := NewTokenServiceHS256(TokenConfig{
		Issuer:     "quotes-test",
		TTL:        time.Hour,
		SigningKey: []byte("a-different-key"),
	})
	if _, err := other.Verify(token); domain.KindOf(err) != domain.KindAuth {
		t.Fatalf("token signed with another key must fail, got %v", err)
	}
}

func TestTokenExpiryIsExact(t *testing.T) {
	// Negative TTL yields a token already past its expiry; there is no
	// verification leeway to save it.
	svc := newTokenService(-time.Minute)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := svc.Verify(token); domain.KindOf(err) != domain.KindAuth {
		t.Fatalf("expired token must fail verification, got %v", err)
	}
}

func TestTokenMalformedFails(t *testing.T) {
	svc := newTokenService(time.Hour)

	for _, bad := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := svc.Verify(bad); domain.KindOf(err) != domain.KindAuth {
			t.Fatalf("malformed token %q must fail verification, got %v", bad, err)
		}
	}
}

func TestTokenIssuerChecked(t *testing.T) {
	token, err := NewTokenServiceHS256(TokenConfig{
		Issuer:     "someone-else",
		TTL:        time.Hour,
		SigningKey: []byte("test-signing-key"),
	}).Issue(testUser())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := newTokenService(time.Hour).Verify(token); domain.KindOf(err) != domain.KindAuth {
		t.Fatalf("token with foreign issuer must fail, got %v", err)
	}
}
