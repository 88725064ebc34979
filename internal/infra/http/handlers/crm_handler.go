package handlers

import (
	"net/http"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/infra/http/middleware"
	"github.com/ethiocodes/nexora/internal/usecase"
	"github.com/go-chi/chi/v5"
)

type CRMHandler struct {
	log *usecase.CRMLog
}

func NewCRMHandler(log *usecase.CRMLog) *CRMHandler {
	return &CRMHandler{log: log}
}

type InteractionsResponse struct {
	LeadID  string               `json:"lead_id"`
	Sending bool                 `json:"sending"`
	Items   []entity.Interaction `json:"items"`
}

func (h *CRMHandler) Open(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	items, err := h.log.Open(r.Context(), id)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, InteractionsResponse{LeadID: id, Sending: h.log.Sending(id), Items: items})
}

// Send bloqueia até o gateway responder; um segundo envio para o mesmo lead
// nesse meio tempo recebe 409.
func (h *CRMHandler) Send(w http.ResponseWriter, r *http.Request) {
	var draft usecase.InteractionDraft
	if !decodeJSON(w, r, &draft) {
		return
	}
	interaction, err := h.log.Send(r.Context(), chi.URLParam(r, "id"), draft)
	if err != nil {
		kind := draft.Type
		if kind == "" {
			kind = entity.InteractionEmail
		}
		switch {
		case usecase.ErrorCode(err) == usecase.CodeSendInProgress:
			middleware.RecordInteraction(string(kind), middleware.InteractionRejected)
		case usecase.IsTechnicalError(err):
			middleware.RecordInteraction(string(kind), middleware.InteractionFailed)
		}
		writeUseCaseError(w, err)
		return
	}
	middleware.RecordInteraction(string(interaction.Type), middleware.InteractionSent)
	writeJSON(w, http.StatusCreated, interaction)
}
