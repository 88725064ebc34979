package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Cloud Migration":                   "cloud-migration",
		"  Backend, APIs & Integrations  ":  "backend-apis-integrations",
		"UI / UX":                           "ui-ux",
		"---Already--Hyphenated---":         "already-hyphenated",
		"Why Startups Fail (And How) 2025!": "why-startups-fail-and-how-2025",
		"":                                  "",
		"!!!":                               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

// TestToggleTagIsInvolutive - aplicar duas vezes volta ao conjunto original
func TestToggleTagIsInvolutive(t *testing.T) {
	lead := Lead{ID: "1", Name: "Abebe", Tags: []string{"Enterprise"}}

	once := lead.WithTagToggled("VIP")
	assert.Equal(t, []string{"Enterprise", "VIP"}, once.Tags)
	assert.Equal(t, []string{"Enterprise"}, lead.Tags, "original must not change")

	twice := once.WithTagToggled("VIP")
	assert.Equal(t, lead, twice)
}

func TestToggleTagOnEmptyLead(t *testing.T) {
	lead := Lead{ID: "1"}
	twice := lead.WithTagToggled("VIP").WithTagToggled("VIP")
	assert.Nil(t, twice.Tags)
	assert.Equal(t, lead, twice)
}

func TestNewLeadDefaults(t *testing.T) {
	now := time.Date(2025, 10, 10, 14, 30, 0, 0, time.FixedZone("EAT", 3*3600))
	lead := NewLead(" Abebe Bikila ", "abebe@test.com", "", "", "fintech", "", now)

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "Abebe Bikila", lead.Name)
	assert.Equal(t, LeadNew, lead.Status)
	assert.Equal(t, time.UTC, lead.Date.Location())
	assert.True(t, lead.Date.Equal(now))
}

func TestBookingTransitions(t *testing.T) {
	assert.True(t, CanTransition(BookingPending, BookingConfirmed))
	assert.True(t, CanTransition(BookingPending, BookingCancelled))
	assert.True(t, CanTransition(BookingConfirmed, BookingCompleted))
	assert.True(t, CanTransition(BookingConfirmed, BookingCancelled))
	assert.True(t, CanTransition(BookingCancelled, BookingCancelled))

	assert.False(t, CanTransition(BookingPending, BookingCompleted))
	assert.False(t, CanTransition(BookingCompleted, BookingCancelled))
	assert.False(t, CanTransition(BookingCancelled, BookingPending))
	assert.False(t, CanTransition("Archived", BookingPending))
}

func TestBookingWithStatus(t *testing.T) {
	b := NewBooking("Sara", "sara@fintech.et", "", "Security Audit", "2025-11-01", "10:00", 1200)
	assert.Equal(t, "security-audit", b.ServiceID)
	assert.Equal(t, BookingPending, b.Status)

	confirmed, err := b.WithStatus(BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, BookingConfirmed, confirmed.Status)
	assert.Equal(t, BookingPending, b.Status)

	_, err = confirmed.WithStatus(BookingPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestBlogPostParagraphs(t *testing.T) {
	p := BlogPost{Content: "First line.\r\n\r\n  Second line.  \nThird."}
	assert.Equal(t, []string{"First line.", "Second line.", "Third."}, p.Paragraphs())
	assert.Nil(t, BlogPost{}.Paragraphs())
}
