package http

import (
	"encoding/json"
	"net/http"

	"quotes/internal/domain"
	"quotes/internal/dto"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validation("Invalid request body."))
		return
	}
	user, err := h.Auth.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK,
		"Registration completed! Please check your email to activate your account!", user)
}

func (h *Handler) activateAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Activate(r.Context(), chi.URLParam(r, "token")); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "User activated! You can now login to your account.", nil)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validation("Invalid request body."))
		return
	}
	token, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Login successfull!", token)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	writeData(w, http.StatusOK, "Logged in user data", dto.NewUserData(user))
}

func (h *Handler) getUserByUsername(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Users.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "", profile)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.Validation("Invalid user id."))
		return
	}
	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Validation("Invalid request body."))
		return
	}
	if err := h.Users.ChangePassword(r.Context(), id, UserFromContext(r.Context()), req); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "Password updated!", nil)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.Validation("Invalid user id."))
		return
	}
	deleted, err := h.Users.Delete(r.Context(), id, UserFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, "User "+deleted.FirstName+" deleted!", nil)
}
