package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadNew       LeadStatus = "New"
	LeadContacted LeadStatus = "Contacted"
	LeadClosed    LeadStatus = "Closed"
	LeadClient    LeadStatus = "Client"
	LeadVIP       LeadStatus = "VIP"
)

var ErrLeadNotFound = errors.New("lead not found")

// LeadStatuses na ordem em que aparecem no filtro do painel.
var LeadStatuses = []LeadStatus{LeadNew, LeadContacted, LeadClosed, LeadClient, LeadVIP}

func (s LeadStatus) Valid() bool {
	for _, st := range LeadStatuses {
		if st == s {
			return true
		}
	}
	return false
}

type Lead struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Website    string     `json:"website"`
	Industry   string     `json:"industry"`
	Issue      string     `json:"issue"`
	Date       time.Time  `json:"date"`
	Status     LeadStatus `json:"status"`
	Tags       []string   `json:"tags,omitempty"`
	TotalSpend float64    `json:"total_spend,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// NewLead monta um lead vindo do formulário público.
func NewLead(name, email, phone, website, industry, issue string, now time.Time) *Lead {
	return &Lead{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Phone:    strings.TrimSpace(phone),
		Website:  strings.TrimSpace(website),
		Industry: strings.TrimSpace(industry),
		Issue:    strings.TrimSpace(issue),
		Date:     now.UTC(),
		Status:   LeadNew,
	}
}

func (l Lead) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// WithTagToggled devolve uma cópia do lead com a tag adicionada ou removida.
// O slice original nunca é alterado.
func (l Lead) WithTagToggled(tag string) Lead {
	tags := make([]string, 0, len(l.Tags)+1)
	found := false
	for _, t := range l.Tags {
		if t == tag {
			found = true
			continue
		}
		tags = append(tags, t)
	}
	if !found {
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		tags = nil
	}
	l.Tags = tags
	return l
}
