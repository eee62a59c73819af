package http

import (
	"encoding/json"
	"net/http"

	"quotes/internal/domain"
	"quotes/internal/dto"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) createQuote(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validation("Invalid request body."))
		return
	}
	quote, err := h.Quotes.Create(r.Context(), UserFromContext(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, "Quote created!", quote)
}

func (h *Handler) listQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.Quotes.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeList(w, http.StatusOK, len(quotes), quotes)
}

func (h *Handler) listQuotesByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, domain.Validation("Invalid user id."))
		return
	}
	quotes, err := h.Quotes.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeList(w, http.StatusOK, len(quotes), quotes)
}

func (h *Handler) getQuote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.Validation("Invalid quote id."))
		return
	}
	quote, err := h.Quotes.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", quote)
}

func (h *Handler) updateQuote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.Validation("Invalid quote id."))
		return
	}
	var req dto.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validation("Invalid request body."))
		return
	}
	quote, err := h.Quotes.Update(r.Context(), id, UserFromContext(r.Context()), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Quote updated!", quote)
}

func (h *Handler) deleteQuote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.Validation("Invalid quote id."))
		return
	}
	quote, err := h.Quotes.Delete(r.Context(), id, UserFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Quote deleted!", quote)
}
