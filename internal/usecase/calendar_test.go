package usecase

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarInviteURL(t *testing.T) {
	req := CalendarRequest{
		Name:     "Sara Tadesse",
		Phone:    "+251 922 987 654",
		Industry: "fintech",
		Issue:    "Security audit",
		Start:    time.Date(2025, 10, 20, 12, 0, 0, 0, time.FixedZone("EAT", 3*3600)),
	}

	raw := CalendarInviteURL(req, "team@ethiocodes.et")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "calendar.google.com", u.Host)
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "System Audit: Sara Tadesse <> EthioCodes", q.Get("text"))
	assert.Equal(t, "20251020T090000Z/20251020T100000Z", q.Get("dates"))
	assert.Equal(t, "team@ethiocodes.et", q.Get("add"))
	assert.Contains(t, q.Get("details"), "Focus: Security audit")
}

func TestCalendarInviteURL_NoStart(t *testing.T) {
	assert.Equal(t, "#", CalendarInviteURL(CalendarRequest{Name: "x"}, ""))
}

func TestCalendarInviteURL_NoInvitee(t *testing.T) {
	raw := CalendarInviteURL(CalendarRequest{Name: "x", Start: time.Now()}, "")
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.False(t, u.Query().Has("add"))
}
