package dto

type QuoteRequest struct {
	Text   string `json:"text" validate:"required,min=10"`
	Author string `json:"author" validate:"required"`
}
