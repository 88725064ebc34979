package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/ethiocodes/nexora/internal/entity"
)

const maxLeadNameLen = 200

var (
	nonDigits  = regexp.MustCompile(`\D`)
	clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCaptureLeadInput(input CaptureLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(strings.TrimSpace(input.Name)) > maxLeadNameLen {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) != "" && !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	return errors
}

// ValidateUpdateLeadInput: campo vazio fica como está, mas nome e email só com
// espaços contam como apagar um campo obrigatório.
func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
	var errors []ValidationError

	name := strings.TrimSpace(input.Name)
	if input.Name != "" && name == "" {
		errors = append(errors, ValidationError{"name", "must not be blank"})
	} else if len(name) > maxLeadNameLen {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if input.Email != "" && strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "must not be blank"})
	} else if input.Email != "" && !isValidEmail(strings.TrimSpace(input.Email)) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}
	if input.Phone != "" && !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	return errors
}

func ValidateCreateBookingInput(input CreateBookingInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.ClientName) == "" {
		errors = append(errors, ValidationError{"client_name", "is required"})
	}
	if strings.TrimSpace(input.ClientEmail) == "" {
		errors = append(errors, ValidationError{"client_email", "is required"})
	} else if !isValidEmail(input.ClientEmail) {
		errors = append(errors, ValidationError{"client_email", "is invalid"})
	}
	if strings.TrimSpace(input.ServiceName) == "" {
		errors = append(errors, ValidationError{"service_name", "is required"})
	}
	if strings.TrimSpace(input.Date) == "" {
		errors = append(errors, ValidationError{"date", "is required"})
	} else if !isValidDate(input.Date) {
		errors = append(errors, ValidationError{"date", "must be a valid date (YYYY-MM-DD)"})
	}
	if strings.TrimSpace(input.Time) == "" {
		errors = append(errors, ValidationError{"time", "is required"})
	} else if !clockRegex.MatchString(input.Time) {
		errors = append(errors, ValidationError{"time", "must be HH:MM"})
	}
	if input.Amount < 0 {
		errors = append(errors, ValidationError{"amount", "must not be negative"})
	}

	return errors
}

func ValidateSaveServiceInput(input SaveServiceInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Title) == "" {
		errors = append(errors, ValidationError{"title", "is required"})
	} else if input.ID == "" && entity.Slugify(input.Title) == "" {
		errors = append(errors, ValidationError{"title", "must contain letters or digits"})
	}
	if input.Icon != "" && !entity.ValidServiceIcon(input.Icon) {
		errors = append(errors, ValidationError{"icon", "is not a known icon"})
	}
	if input.Price != nil && *input.Price < 0 {
		errors = append(errors, ValidationError{"price", "must not be negative"})
	}
	if input.Duration != nil && *input.Duration <= 0 {
		errors = append(errors, ValidationError{"duration", "must be positive minutes"})
	}

	return errors
}

func ValidateSaveBlogPostInput(input SaveBlogPostInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Title) == "" {
		errors = append(errors, ValidationError{"title", "is required"})
	} else if input.Slug == "" && entity.Slugify(input.Title) == "" {
		errors = append(errors, ValidationError{"title", "must contain letters or digits"})
	}

	return errors
}

func ValidateTestimonialInput(input TestimonialInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Author) == "" {
		errors = append(errors, ValidationError{"author", "is required"})
	}
	if strings.TrimSpace(input.Quote) == "" {
		errors = append(errors, ValidationError{"quote", "is required"})
	}

	return errors
}

func ValidateInteractionDraft(draft InteractionDraft) []ValidationError {
	var errors []ValidationError

	if draft.Type != "" && !draft.Type.Valid() {
		errors = append(errors, ValidationError{"type", "must be email, sms, call or note"})
	}
	if strings.TrimSpace(draft.Content) == "" {
		errors = append(errors, ValidationError{"content", "is required"})
	}

	return errors
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	return len(cleaned) >= 9 && len(cleaned) <= 15
}

func isValidDate(dateStr string) bool {
	if _, err := time.Parse("2006-01-02", dateStr); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return true
	}
	return false
}
