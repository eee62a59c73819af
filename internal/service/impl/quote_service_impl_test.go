package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotes/internal/domain"
	"quotes/internal/dto"

	"github.com/google/uuid"
)

func seedUser(t *testing.T, st *memoryStore, username string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:        uuid.New(),
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     username + "@example.com",
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := st.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestQuoteCreateAndGet(t *testing.T) {
	st := newMemoryStore()
	svc := &QuoteServiceImpl{Store: st}
	owner := seedUser(t, st, "owner")

	created, err := svc.Create(context.Background(), owner, dto.QuoteRequest{
		Text:   "Stay hungry, stay foolish.",
		Author: "Steve Jobs",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.CreatedBy != owner.ID.String() {
		t.Fatalf("quote owner mismatch: %s", created.CreatedBy)
	}

	got, err := svc.Get(context.Background(), uuid.MustParse(created.ID))
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Text != created.Text || got.Author != created.Author {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, created)
	}
}

func TestQuoteCreateValidatesInput(t *testing.T) {
	st := newMemoryStore()
	svc := &QuoteServiceImpl{Store: st}
	owner := seedUser(t, st, "owner")

	cases := []dto.QuoteRequest{
		{Text: "", Author: "Someone"},
		{Text: "too short", Author: "Someone"},
		{Text: "long enough to pass", Author: ""},
	}
	for _, req := range cases {
		if _, err := svc.Create(context.Background(), owner, req); domain.KindOf(err) != domain.KindValidation {
			t.Fatalf("expected validation error for %+v, got %v", req, err)
		}
	}
}

func TestQuoteOwnershipGate(t *testing.T) {
	st := newMemoryStore()
	svc := &QuoteServiceImpl{Store: st}
	owner := seedUser(t, st, "owner")
	intruder := seedUser(t, st, "intruder")

	created, err := svc.Create(context.Background(), owner, dto.QuoteRequest{
		Text:   "The unexamined life is not worth living.",
		Author: "Socrates",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	id := uuid.MustParse(created.ID)
	update := dto.QuoteRequest{Text: "A different quote entirely.", Author: "Anon"}

	if _, err := svc.Update(context.Background(), id, intruder, update); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("non-owner update must be forbidden, got %v", err)
	}
	if _, err := svc.Delete(context.Background(), id, intruder); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("non-owner delete must be forbidden, got %v", err)
	}

	if _, err := svc.Update(context.Background(), id, owner, update); err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	deleted, err := svc.Delete(context.Background(), id, owner)
	if err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if deleted.Text != update.Text {
		t.Fatalf("delete should return the removed quote, got %+v", deleted)
	}
	if _, err := svc.Get(context.Background(), id); !errors.Is(err, domain.ErrQuoteNotFound) {
		t.Fatalf("quote should be gone, got %v", err)
	}
}

func TestQuoteListNewestFirst(t *testing.T) {
	st := newMemoryStore()
	svc := &QuoteServiceImpl{Store: st}
	owner := seedUser(t, st, "owner")

	base := time.Now().UTC()
	for i, text := range []string{"the first quote here", "the second quote here", "the third quote here"} {
		quote := &domain.Quote{
			ID:        uuid.New(),
			Text:      text,
			Author:    "Anon",
			CreatedBy: owner.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := st.Quotes().Create(context.Background(), quote); err != nil {
			t.Fatalf("seed quote: %v", err)
		}
	}

	quotes, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(quotes) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(quotes))
	}
	if quotes[0].Text != "the third quote here" || quotes[2].Text != "the first quote here" {
		t.Fatalf("quotes not in newest-first order: %+v", quotes)
	}
}

func TestQuoteNotFound(t *testing.T) {
	st := newMemoryStore()
	svc := &QuoteServiceImpl{Store: st}
	actor := seedUser(t, st, "actor")

	id := uuid.New()
	if _, err := svc.Get(context.Background(), id); !errors.Is(err, domain.ErrQuoteNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
	update := dto.QuoteRequest{Text: "irrelevant but valid text", Author: "Anon"}
	if _, err := svc.Update(context.Background(), id, actor, update); !errors.Is(err, domain.ErrQuoteNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
