package handlers

import (
	"net/http"

	"github.com/ethiocodes/nexora/internal/usecase"
)

type CalendarHandler struct {
	inviteEmail string
}

func NewCalendarHandler(inviteEmail string) *CalendarHandler {
	return &CalendarHandler{inviteEmail: inviteEmail}
}

func (h *CalendarHandler) Link(w http.ResponseWriter, r *http.Request) {
	var req usecase.CalendarRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": usecase.CalendarInviteURL(req, h.inviteEmail)})
}
