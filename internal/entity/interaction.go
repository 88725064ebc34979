package entity

import "time"

type InteractionType string

const (
	InteractionEmail InteractionType = "email"
	InteractionSMS   InteractionType = "sms"
	InteractionCall  InteractionType = "call"
	InteractionNote  InteractionType = "note"
)

func (t InteractionType) Valid() bool {
	switch t {
	case InteractionEmail, InteractionSMS, InteractionCall, InteractionNote:
		return true
	}
	return false
}

type InteractionStatus string

const (
	InteractionSent      InteractionStatus = "sent"
	InteractionDelivered InteractionStatus = "delivered"
	InteractionMissed    InteractionStatus = "missed"
	InteractionCompleted InteractionStatus = "completed"
)

// Interaction é uma entrada do histórico de CRM de um lead.
type Interaction struct {
	ID      int64             `json:"id"`
	LeadID  string            `json:"lead_id"`
	Type    InteractionType   `json:"type"`
	Date    time.Time         `json:"date"`
	Title   string            `json:"title"`
	Content string            `json:"content"`
	Status  InteractionStatus `json:"status"`
}
