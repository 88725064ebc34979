package handlers

import (
	"net/http"

	"github.com/ethiocodes/nexora/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// ViewHandler expõe a aba ativa e o lead aberto no painel.
type ViewHandler struct {
	view *usecase.ViewController
}

func NewViewHandler(view *usecase.ViewController) *ViewHandler {
	return &ViewHandler{view: view}
}

func (h *ViewHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.view.State(r.Context()))
}

func (h *ViewHandler) SetTab(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Tab usecase.AdminTab `json:"tab"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	if err := h.view.SetTab(input.Tab); err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.view.State(r.Context()))
}

func (h *ViewHandler) SelectLead(w http.ResponseWriter, r *http.Request) {
	if _, err := h.view.SelectLead(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.view.State(r.Context()))
}

func (h *ViewHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.view.ClearSelection()
	writeJSON(w, http.StatusOK, h.view.State(r.Context()))
}
