package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"quotes/internal/domain"
)

// envelope is the uniform response shape: {success, message, results?, data}.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Results *int   `json:"results,omitempty"`
	Data    any    `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

func writeList(w http.ResponseWriter, status int, count int, data any) {
	writeJSON(w, status, envelope{Success: true, Results: &count, Data: data})
}

// writeError is the single translator from the error taxonomy to an HTTP
// status and a {success:false, message} body. Anything unclassified becomes a
// 500 with a generic message so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong! Please try again later!"

	kind := domain.KindOf(err)
	switch kind {
	case domain.KindValidation, domain.KindConflict:
		status = http.StatusBadRequest
	case domain.KindAuth:
		status = http.StatusUnauthorized
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindNotFound:
		status = http.StatusNotFound
	}

	var de *domain.Error
	if errors.As(err, &de) {
		message = de.Message
	} else if kind != domain.KindServer {
		message = err.Error()
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}

	writeJSON(w, status, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{Success: false, Message: message})
}
