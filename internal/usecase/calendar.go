package usecase

import (
	"fmt"
	"net/url"
	"time"
)

const (
	calendarBaseURL   = "https://calendar.google.com/calendar/render"
	calendarStampFmt  = "20060102T150405Z"
	calendarSessionLn = time.Hour
)

type CalendarRequest struct {
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Industry string    `json:"industry"`
	Issue    string    `json:"issue"`
	Start    time.Time `json:"start"`
}

// CalendarInviteURL monta o link de convite do Google Calendar para a sessão
// de auditoria (1 hora). Sem data de início devolve "#".
func CalendarInviteURL(req CalendarRequest, inviteEmail string) string {
	if req.Start.IsZero() {
		return "#"
	}
	start := req.Start.UTC()
	end := start.Add(calendarSessionLn)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", fmt.Sprintf("System Audit: %s <> EthioCodes", req.Name))
	params.Set("details", fmt.Sprintf("Client: %s\nPhone: %s\nIndustry: %s\nFocus: %s\n\nbooked via EthioCodes Platform",
		req.Name, req.Phone, req.Industry, req.Issue))
	params.Set("dates", start.Format(calendarStampFmt)+"/"+end.Format(calendarStampFmt))
	if inviteEmail != "" {
		params.Set("add", inviteEmail)
	}
	return calendarBaseURL + "?" + params.Encode()
}
