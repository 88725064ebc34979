package usecase

import (
	"strings"

	"github.com/ethiocodes/nexora/internal/entity"
)

type CaptureLeadInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Industry string `json:"industry"`
	Issue    string `json:"issue"`
}

// UpdateLeadInput: campos vazios são ignorados.
type UpdateLeadInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Industry string `json:"industry"`
	Issue    string `json:"issue"`
	Notes    string `json:"notes"`
}

func (in UpdateLeadInput) trimmed() UpdateLeadInput {
	return UpdateLeadInput{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Website:  strings.TrimSpace(in.Website),
		Industry: strings.TrimSpace(in.Industry),
		Issue:    strings.TrimSpace(in.Issue),
		Notes:    strings.TrimSpace(in.Notes),
	}
}

type CreateBookingInput struct {
	ClientName  string  `json:"client_name"`
	ClientEmail string  `json:"client_email"`
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Amount      float64 `json:"amount"`
	StaffID     string  `json:"staff_id"`
}

// SaveServiceInput com ID vazio cria um serviço novo.
type SaveServiceInput struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	ShortDesc string   `json:"short_desc"`
	FullDesc  string   `json:"full_desc"`
	Features  []string `json:"features"`
	Icon      string   `json:"icon"`
	Category  string   `json:"category"`
	Price     *float64 `json:"price"`
	Duration  *int     `json:"duration"`
}

// SaveBlogPostInput com Slug vazio cria um post novo.
type SaveBlogPostInput struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Author   string `json:"author"`
	ReadTime string `json:"read_time"`
}

type TestimonialInput struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

type InteractionDraft struct {
	Type    entity.InteractionType `json:"type"`
	Subject string                 `json:"subject"`
	Content string                 `json:"content"`
}

// OutboundMessage é o que o gateway de notificação recebe.
type OutboundMessage struct {
	InteractionID int64                  `json:"interaction_id"`
	LeadID        string                 `json:"lead_id"`
	LeadName      string                 `json:"lead_name"`
	LeadEmail     string                 `json:"lead_email"`
	LeadPhone     string                 `json:"lead_phone"`
	Type          entity.InteractionType `json:"type"`
	Subject       string                 `json:"subject"`
	Content       string                 `json:"content"`
}
