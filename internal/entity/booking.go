package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

var BookingStatuses = []BookingStatus{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled}

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

// bookingTransitions: Completed e Cancelled são finais.
var bookingTransitions = map[BookingStatus]map[BookingStatus]bool{
	BookingPending:   {BookingConfirmed: true, BookingCancelled: true},
	BookingConfirmed: {BookingCompleted: true, BookingCancelled: true},
	BookingCompleted: {},
	BookingCancelled: {},
}

func (s BookingStatus) Valid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// CanTransition diz se a reserva pode sair de "from" para "to".
// Repetir o status atual é aceito e não muda nada.
func CanTransition(from, to BookingStatus) bool {
	if from == to {
		return from.Valid()
	}
	nexts, ok := bookingTransitions[from]
	if !ok {
		return false
	}
	return nexts[to]
}

type Booking struct {
	ID          string        `json:"id"`
	ClientName  string        `json:"client_name"`
	ClientEmail string        `json:"client_email"`
	ServiceID   string        `json:"service_id"`
	ServiceName string        `json:"service_name"`
	Date        string        `json:"date"` // YYYY-MM-DD
	Time        string        `json:"time"` // HH:MM
	Status      BookingStatus `json:"status"`
	Amount      float64       `json:"amount"`
	StaffID     string        `json:"staff_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

func NewBooking(clientName, clientEmail, serviceID, serviceName, date, clock string, amount float64) *Booking {
	if serviceID == "" {
		serviceID = Slugify(serviceName)
	}
	return &Booking{
		ID:          uuid.New().String(),
		ClientName:  clientName,
		ClientEmail: clientEmail,
		ServiceID:   serviceID,
		ServiceName: serviceName,
		Date:        date,
		Time:        clock,
		Status:      BookingPending,
		Amount:      amount,
		CreatedAt:   time.Now().UTC(),
	}
}

// WithStatus aplica a transição validada e devolve a cópia alterada.
func (b Booking) WithStatus(to BookingStatus) (Booking, error) {
	if !CanTransition(b.Status, to) {
		return b, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, to)
	}
	b.Status = to
	return b, nil
}

// Billable indica se o valor entra na receita.
func (b Booking) Billable() bool {
	return b.Status != BookingCancelled
}
