package handlers

import (
	"net/http"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/usecase"
	"github.com/go-chi/chi/v5"
)

type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	services := h.uc.List(r.Context(), usecase.ServiceQuery{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	})
	writeJSON(w, http.StatusOK, listResponse[entity.Service]{
		Items:      services,
		Total:      len(services),
		Categories: h.uc.Categories(r.Context()),
	})
}

func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	svc, err := h.uc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// Save cria (sem id) ou substitui (com id) um serviço.
func (h *ServiceHandler) Save(w http.ResponseWriter, r *http.Request) {
	var input usecase.SaveServiceInput
	if !decodeJSON(w, r, &input) {
		return
	}
	status := http.StatusOK
	if input.ID == "" {
		status = http.StatusCreated
	}
	svc, err := h.uc.Save(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	writeJSON(w, status, svc)
}

func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeUseCaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
