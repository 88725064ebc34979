package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/usecase"
	"gopkg.in/gomail.v2"
)

var interactionTemplate = template.Must(template.New("interaction").Parse(`<p>Hi {{.Name}},</p>
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}<p>EthioCodes Team</p>
`))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

// WithDialer troca o dialer SMTP (usado nos testes).
func (s *EmailSender) WithDialer(d Dialer) *EmailSender {
	s.dialer = d
	return s
}

// Deliver envia interações do tipo email por SMTP. SMS, ligação e nota não têm
// canal aqui e são aceitas sem envio.
func (s *EmailSender) Deliver(ctx context.Context, msg usecase.OutboundMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.Type != entity.InteractionEmail {
		return nil
	}
	if msg.LeadEmail == "" {
		return fmt.Errorf("lead %s has no email address", msg.LeadID)
	}

	body, err := renderInteraction(InteractionEmailData{
		Name:    firstName(msg.LeadName),
		Subject: msg.Subject,
		Content: msg.Content,
	})
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", msg.LeadEmail)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Content)
	m.AddAlternative("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}
	return nil
}

func renderInteraction(data InteractionEmailData) (string, error) {
	var paragraphs []string
	for _, line := range strings.Split(data.Content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}

	var body bytes.Buffer
	err := interactionTemplate.Execute(&body, struct {
		Name       string
		Paragraphs []string
	}{data.Name, paragraphs})
	if err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}
	return body.String(), nil
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return "there"
}
