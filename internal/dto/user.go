package dto

import (
	"time"

	"quotes/internal/domain"
)

// UserData is the serializable view of a user. Password hash, active flag and
// activation token hash never leave the service.
type UserData struct {
	ID        string    `json:"id"`
	FirstName string    `json:"fname"`
	LastName  string    `json:"lname"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserProfile struct {
	UserData
	Quotes []QuoteData `json:"quotes"`
}

type QuoteData struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedBy string    `json:"createdBy"`
	Creator   *UserData `json:"creator,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserData(u *domain.User) UserData {
	return UserData{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func NewQuoteData(q *domain.Quote) QuoteData {
	out := QuoteData{
		ID:        q.ID.String(),
		Text:      q.Text,
		Author:    q.Author,
		CreatedBy: q.CreatedBy.String(),
		CreatedAt: q.CreatedAt,
	}
	if q.Creator != nil {
		creator := NewUserData(q.Creator)
		out.Creator = &creator
	}
	return out
}

func NewQuoteList(quotes []*domain.Quote) []QuoteData {
	out := make([]QuoteData, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, NewQuoteData(q))
	}
	return out
}
