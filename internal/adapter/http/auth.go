package httpadapter

import (
	"net/http"

	"crowdoo/internal/core/domain"
	"crowdoo/internal/core/port"
)

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}
	user, err := h.svc.Auth.Register(r.Context(), port.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		h.writeDomainError(w, r, "register", err)
		return
	}
	writeJSON(w, http.StatusCreated, toUser(*user))
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
		return
	}
	res, err := h.svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeDomainError(w, r, "login", err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{
		Token:     res.Token,
		TokenType: "bearer",
		ExpiresAt: res.ExpiresAt,
		User:      toUser(res.User),
	})
}

func (h *Handler) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Auth.CurrentUser(r.Context(), principalFrom(r.Context()))
	if err != nil {
		h.writeDomainError(w, r, "current user", err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(*user))
}
