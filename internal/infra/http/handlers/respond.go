package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ethiocodes/nexora/internal/usecase"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Code    string                    `json:"code"`
	Error   string                    `json:"error"`
	Details []usecase.ValidationError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Error: message})
}

// writeUseCaseError traduz o código do erro de domínio/técnico em status HTTP.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		writeJSON(w, domainStatus(de.Code), ErrorResponse{Code: de.Code, Error: de.Message, Details: de.Fields})
		return
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		status := http.StatusInternalServerError
		if te.Code == usecase.CodeDeliveryFailed {
			status = http.StatusBadGateway
		}
		writeErrorResponse(w, status, te.Code, te.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
}

func domainStatus(code string) int {
	switch code {
	case usecase.CodeValidation:
		return http.StatusBadRequest
	case usecase.CodeNotFound:
		return http.StatusNotFound
	case usecase.CodeDuplicateKey, usecase.CodeSendInProgress:
		return http.StatusConflict
	case usecase.CodeAuthFailed:
		return http.StatusUnauthorized
	case usecase.CodeInvalidTransition:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// decodeJSON lê o corpo; em erro já responde 400 e devolve false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return false
	}
	return true
}

type listResponse[T any] struct {
	Items      []T      `json:"items"`
	Total      int      `json:"total"`
	Categories []string `json:"categories,omitempty"`
}
