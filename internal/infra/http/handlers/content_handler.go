package handlers

import (
	"net/http"

	"github.com/ethiocodes/nexora/internal/usecase"
)

// ContentHandler serve o conteúdo fixo do site (features, planos, FAQ).
type ContentHandler struct {
	content usecase.SiteContent
}

func NewContentHandler(content usecase.SiteContent) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) Features(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content.Features)
}

func (h *ContentHandler) Pricing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content.Pricing)
}

func (h *ContentHandler) FAQs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.content.FAQs)
}
