package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/ethiocodes/nexora/internal/entity"
	"go.uber.org/zap"
)

type BookingUseCase struct {
	Bookings BookingCollection
	Leads    LeadCollection
	Logger   *zap.Logger
}

func NewBookingUseCase(bookings BookingCollection, leads LeadCollection, logger *zap.Logger) *BookingUseCase {
	return &BookingUseCase{
		Bookings: bookings,
		Leads:    leads,
		Logger:   orNop(logger),
	}
}

func byBookingID(id string) func(entity.Booking) bool {
	return func(b entity.Booking) bool { return b.ID == id }
}

func (uc *BookingUseCase) List(ctx context.Context, q BookingQuery) []entity.Booking {
	return FilterBookings(uc.Bookings.Snapshot(ctx), q)
}

func (uc *BookingUseCase) Get(ctx context.Context, id string) (entity.Booking, error) {
	b, ok := Find(uc.Bookings.Snapshot(ctx), byBookingID(id))
	if !ok {
		return entity.Booking{}, storeFailure(uc.Logger, "get_booking", id, entity.ErrBookingNotFound, entity.ErrBookingNotFound)
	}
	return b, nil
}

// Create adiciona a reserva no fim da lista e soma o valor no total gasto do
// lead com o mesmo email. Se a segunda etapa falhar, a reserva é removida.
func (uc *BookingUseCase) Create(ctx context.Context, input CreateBookingInput) (*entity.Booking, error) {
	if errs := ValidateCreateBookingInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	booking := entity.NewBooking(
		strings.TrimSpace(input.ClientName),
		strings.TrimSpace(input.ClientEmail),
		strings.TrimSpace(input.ServiceID),
		strings.TrimSpace(input.ServiceName),
		input.Date, input.Time, input.Amount,
	)
	booking.StaffID = input.StaffID

	txn := NewTransaction(uc.Logger)

	txn.AddOperation("append_booking", func(ctx context.Context) error {
		return uc.Bookings.Apply(ctx, func(current []entity.Booking) ([]entity.Booking, error) {
			return Append(current, *booking), nil
		})
	})
	txn.AddCompensation("remove_booking", func(ctx context.Context) error {
		return uc.removeBooking(ctx, booking.ID)
	})

	txn.AddOperation("record_client_spend", func(ctx context.Context) error {
		return uc.adjustClientSpend(ctx, booking.ClientEmail, booking.Amount)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, storeFailure(uc.Logger, "create_booking", booking.ID, err)
	}

	uc.Logger.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("service_id", booking.ServiceID),
		zap.Float64("amount", booking.Amount))
	return booking, nil
}

// UpdateStatus segue a máquina de estados da reserva. Ir para Cancelled é o
// mesmo que Cancel.
func (uc *BookingUseCase) UpdateStatus(ctx context.Context, id string, to entity.BookingStatus) (entity.Booking, error) {
	if !to.Valid() {
		return entity.Booking{}, validationFailed([]ValidationError{{"status", "must be one of Pending, Confirmed, Completed, Cancelled"}})
	}
	if to == entity.BookingCancelled {
		return uc.Cancel(ctx, id)
	}
	updated, _, err := uc.transition(ctx, id, to)
	if err != nil {
		return entity.Booking{}, err
	}
	return updated, nil
}

// Cancel é o "delete" das reservas: só muda o status, o registro continua na
// lista para histórico. O valor sai do total gasto do lead.
func (uc *BookingUseCase) Cancel(ctx context.Context, id string) (entity.Booking, error) {
	var (
		updated  entity.Booking
		previous entity.BookingStatus
	)

	txn := NewTransaction(uc.Logger)
	txn.AddOperation("cancel_booking", func(ctx context.Context) error {
		var err error
		updated, previous, err = uc.transition(ctx, id, entity.BookingCancelled)
		return err
	})
	txn.AddCompensation("restore_booking_status", func(ctx context.Context) error {
		return uc.Bookings.Apply(ctx, func(current []entity.Booking) ([]entity.Booking, error) {
			i := IndexOf(current, byBookingID(id))
			if i < 0 {
				return nil, entity.ErrBookingNotFound
			}
			b := current[i]
			b.Status = previous
			return ReplaceAt(current, i, b), nil
		})
	})
	txn.AddOperation("release_client_spend", func(ctx context.Context) error {
		if previous == entity.BookingCancelled {
			return nil
		}
		return uc.adjustClientSpend(ctx, updated.ClientEmail, -updated.Amount)
	})

	if err := txn.Execute(ctx); err != nil {
		var de *DomainError
		if errors.As(err, &de) {
			return entity.Booking{}, de
		}
		return entity.Booking{}, storeFailure(uc.Logger, "cancel_booking", id, err)
	}

	uc.Logger.Info("booking cancelled", zap.String("booking_id", id))
	return updated, nil
}

func (uc *BookingUseCase) transition(ctx context.Context, id string, to entity.BookingStatus) (entity.Booking, entity.BookingStatus, error) {
	var (
		updated  entity.Booking
		previous entity.BookingStatus
	)
	err := uc.Bookings.Apply(ctx, func(current []entity.Booking) ([]entity.Booking, error) {
		i := IndexOf(current, byBookingID(id))
		if i < 0 {
			return nil, entity.ErrBookingNotFound
		}
		previous = current[i].Status
		next, err := current[i].WithStatus(to)
		if err != nil {
			return nil, err
		}
		updated = next
		return ReplaceAt(current, i, next), nil
	})
	if errors.Is(err, entity.ErrInvalidTransition) {
		uc.Logger.Warn("booking transition rejected", zap.String("booking_id", id), zap.Error(err))
		return entity.Booking{}, previous, &DomainError{Code: CodeInvalidTransition, Message: err.Error(), Err: err}
	}
	if err != nil {
		return entity.Booking{}, previous, storeFailure(uc.Logger, "booking_transition", id, err, entity.ErrBookingNotFound)
	}
	return updated, previous, nil
}

func (uc *BookingUseCase) removeBooking(ctx context.Context, id string) error {
	return uc.Bookings.Apply(ctx, func(current []entity.Booking) ([]entity.Booking, error) {
		i := IndexOf(current, byBookingID(id))
		if i < 0 {
			return current, nil
		}
		return RemoveAt(current, i), nil
	})
}

// adjustClientSpend soma delta no TotalSpend do lead com o email informado.
// Sem lead correspondente não há nada a fazer.
func (uc *BookingUseCase) adjustClientSpend(ctx context.Context, email string, delta float64) error {
	if delta == 0 || uc.Leads == nil {
		return nil
	}
	return uc.Leads.Apply(ctx, func(current []entity.Lead) ([]entity.Lead, error) {
		i := IndexOf(current, func(l entity.Lead) bool { return strings.EqualFold(l.Email, email) })
		if i < 0 {
			return current, nil
		}
		l := current[i]
		l.TotalSpend += delta
		if l.TotalSpend < 0 {
			l.TotalSpend = 0
		}
		return ReplaceAt(current, i, l), nil
	})
}
