package handlers

import (
	"net/http"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/infra/http/middleware"
	"github.com/ethiocodes/nexora/internal/usecase"
	"github.com/go-chi/chi/v5"
)

type BookingHandler struct {
	uc *usecase.BookingUseCase
}

func NewBookingHandler(uc *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bookings := h.uc.List(r.Context(), usecase.BookingQuery{
		Search: q.Get("search"),
		Status: q.Get("status"),
	})
	writeJSON(w, http.StatusOK, listResponse[entity.Booking]{Items: bookings, Total: len(bookings)})
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateBookingInput
	if !decodeJSON(w, r, &input) {
		return
	}
	booking, err := h.uc.Create(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	middleware.RecordBookingStatus(string(booking.Status))
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Status entity.BookingStatus `json:"status"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	booking, err := h.uc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), input.Status)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	middleware.RecordBookingStatus(string(booking.Status))
	writeJSON(w, http.StatusOK, booking)
}

// Cancel atende o DELETE: a reserva fica na lista com status Cancelled.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	booking, err := h.uc.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	middleware.RecordBookingStatus(string(booking.Status))
	writeJSON(w, http.StatusOK, booking)
}
