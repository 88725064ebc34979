package mail

import "gopkg.in/gomail.v2"

type InteractionEmailData struct {
	Name    string
	Subject string
	Content string
}

// Dialer é a parte do gomail.Dialer que o sender usa.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string

	dialer Dialer
}
