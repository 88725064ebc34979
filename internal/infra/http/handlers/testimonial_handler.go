package handlers

import (
	"net/http"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/usecase"
	"github.com/go-chi/chi/v5"
)

type TestimonialHandler struct {
	uc *usecase.TestimonialUseCase
}

func NewTestimonialHandler(uc *usecase.TestimonialUseCase) *TestimonialHandler {
	return &TestimonialHandler{uc: uc}
}

func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.uc.List(r.Context())
	writeJSON(w, http.StatusOK, listResponse[entity.Testimonial]{Items: items, Total: len(items)})
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.TestimonialInput
	if !decodeJSON(w, r, &input) {
		return
	}
	t, err := h.uc.Create(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.TestimonialInput
	if !decodeJSON(w, r, &input) {
		return
	}
	t, err := h.uc.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUseCaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
