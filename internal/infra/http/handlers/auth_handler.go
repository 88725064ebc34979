package handlers

import (
	"net/http"

	"github.com/ethiocodes/nexora/internal/infra/http/middleware"
	"github.com/ethiocodes/nexora/internal/usecase"
)

type AuthHandler struct {
	gate *usecase.AuthGate
}

func NewAuthHandler(gate *usecase.AuthGate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	session, err := h.gate.Login(input.Password)
	if err != nil {
		if usecase.ErrorCode(err) == usecase.CodeAuthFailed {
			middleware.RecordAuthFailure()
		}
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}
