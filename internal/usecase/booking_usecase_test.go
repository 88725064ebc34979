package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ethiocodes/nexora/internal/entity"
	"github.com/ethiocodes/nexora/internal/infra/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLeadCollection simula a coleção de leads para forçar falhas no meio da
// transação.
type MockLeadCollection struct {
	mock.Mock
}

func (m *MockLeadCollection) Snapshot(ctx context.Context) []entity.Lead {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]entity.Lead)
}

func (m *MockLeadCollection) Apply(ctx context.Context, fn func([]entity.Lead) ([]entity.Lead, error)) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func sampleBookings() []entity.Booking {
	return []entity.Booking{
		{ID: "b-1", ClientName: "Sara Tadesse", ClientEmail: "sara@fintech.et", ServiceName: "Cybersecurity", Status: entity.BookingConfirmed, Amount: 4500},
		{ID: "b-2", ClientName: "Abebe Bikila", ClientEmail: "abebe@marathon.et", ServiceName: "Custom Software", Status: entity.BookingPending, Amount: 1000},
	}
}

func validBooking() CreateBookingInput {
	return CreateBookingInput{
		ClientName:  "Sara Tadesse",
		ClientEmail: "SARA@fintech.et",
		ServiceName: "Cloud Migration",
		Date:        "2025-11-03",
		Time:        "10:30",
		Amount:      2000,
	}
}

func TestCreateBooking_RecordsClientSpend(t *testing.T) {
	ctx := context.Background()
	bookings := memory.NewCollection(sampleBookings())
	leads := memory.NewCollection(sampleLeads())
	uc := NewBookingUseCase(bookings, leads, nil)

	b, err := uc.Create(ctx, validBooking())
	require.NoError(t, err)

	assert.Equal(t, entity.BookingPending, b.Status)
	assert.Equal(t, "cloud-migration", b.ServiceID)

	all := bookings.Snapshot(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, b.ID, all[2].ID)

	sara, _ := Find(leads.Snapshot(ctx), byLeadID("2"))
	assert.Equal(t, 2000.0, sara.TotalSpend)
}

func TestCreateBooking_RollsBackWhenSpendFails(t *testing.T) {
	ctx := context.Background()
	bookings := memory.NewCollection(sampleBookings())
	leads := new(MockLeadCollection)
	leads.On("Apply", mock.Anything, mock.Anything).Return(errors.New("leads unavailable"))

	uc := NewBookingUseCase(bookings, leads, nil)
	_, err := uc.Create(ctx, validBooking())

	require.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	assert.Equal(t, CodeStoreError, ErrorCode(err))
	assert.Len(t, bookings.Snapshot(ctx), 2, "booking must be removed by compensation")
	leads.AssertExpectations(t)
}

func TestCreateBooking_Validation(t *testing.T) {
	uc := NewBookingUseCase(memory.NewCollection[entity.Booking](nil), nil, nil)

	in := validBooking()
	in.Date = "2025-13-40"
	in.Time = "25:00"
	in.Amount = -1
	_, err := uc.Create(context.Background(), in)

	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Len(t, de.Fields, 3)
}

func TestCancelBooking_IsSoftDelete(t *testing.T) {
	ctx := context.Background()
	bookings := memory.NewCollection(sampleBookings())
	leads := memory.NewCollection([]entity.Lead{{ID: "2", Email: "sara@fintech.et", TotalSpend: 4500}})
	uc := NewBookingUseCase(bookings, leads, nil)

	b, err := uc.Cancel(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingCancelled, b.Status)

	all := bookings.Snapshot(ctx)
	assert.Len(t, all, 2)
	assert.Equal(t, entity.BookingCancelled, all[0].Status)
	assert.Equal(t, 0.0, leads.Snapshot(ctx)[0].TotalSpend)

	again, err := uc.Cancel(ctx, "b-1")
	require.NoError(t, err, "cancelling twice is a no-op")
	assert.Equal(t, entity.BookingCancelled, again.Status)
	assert.Equal(t, 0.0, leads.Snapshot(ctx)[0].TotalSpend)
}

func TestCancelBooking_RestoresStatusWhenSpendFails(t *testing.T) {
	ctx := context.Background()
	bookings := memory.NewCollection(sampleBookings())
	leads := new(MockLeadCollection)
	leads.On("Apply", mock.Anything, mock.Anything).Return(errors.New("boom"))

	_, err := NewBookingUseCase(bookings, leads, nil).Cancel(ctx, "b-2")

	require.Error(t, err)
	assert.Equal(t, entity.BookingPending, bookings.Snapshot(ctx)[1].Status)
}

func TestUpdateBookingStatus_Transitions(t *testing.T) {
	ctx := context.Background()
	uc := NewBookingUseCase(memory.NewCollection(sampleBookings()), nil, nil)

	b, err := uc.UpdateStatus(ctx, "b-2", entity.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, b.Status)

	b, err = uc.UpdateStatus(ctx, "b-2", entity.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingCompleted, b.Status)

	_, err = uc.UpdateStatus(ctx, "b-2", entity.BookingPending)
	assert.Equal(t, CodeInvalidTransition, ErrorCode(err))

	_, err = uc.UpdateStatus(ctx, "b-2", "Archived")
	assert.Equal(t, CodeValidation, ErrorCode(err))

	_, err = uc.UpdateStatus(ctx, "nope", entity.BookingConfirmed)
	assert.Equal(t, CodeNotFound, ErrorCode(err))

	_, err = uc.Cancel(ctx, "b-2")
	assert.Equal(t, CodeInvalidTransition, ErrorCode(err), "completed bookings cannot be cancelled")
}

func TestListBookings(t *testing.T) {
	uc := NewBookingUseCase(memory.NewCollection(sampleBookings()), nil, nil)
	assert.Len(t, uc.List(context.Background(), BookingQuery{Search: "sara"}), 1)

	b, err := uc.Get(context.Background(), "b-2")
	require.NoError(t, err)
	assert.Equal(t, "Abebe Bikila", b.ClientName)
}

// cancelAfterApply cancela o contexto logo depois da primeira escrita, como um
// cliente HTTP que desconecta no meio da transação.
type cancelAfterApply struct {
	*memory.Collection[entity.Booking]
	cancel context.CancelFunc
	calls  int
}

func (c *cancelAfterApply) Apply(ctx context.Context, fn func([]entity.Booking) ([]entity.Booking, error)) error {
	err := c.Collection.Apply(ctx, fn)
	c.calls++
	if c.calls == 1 {
		c.cancel()
	}
	return err
}

func TestCreateBooking_CancelledMidwayLeavesStoreUnchanged(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bookings := &cancelAfterApply{Collection: memory.NewCollection(sampleBookings()), cancel: cancel}
	leads := memory.NewCollection(sampleLeads())
	uc := NewBookingUseCase(bookings, leads, nil)

	_, err := uc.Create(ctx, validBooking())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	bg := context.Background()
	assert.Equal(t, []string{"b-1", "b-2"}, bookingIDs(bookings.Snapshot(bg)))
	lead, _ := Find(leads.Snapshot(bg), byLeadID("2"))
	assert.Zero(t, lead.TotalSpend)
}

func TestCancelBooking_CancelledMidwayRestoresStatus(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bookings := &cancelAfterApply{Collection: memory.NewCollection(sampleBookings()), cancel: cancel}
	leads := memory.NewCollection([]entity.Lead{{ID: "2", Email: "sara@fintech.et", TotalSpend: 4500}})
	uc := NewBookingUseCase(bookings, leads, nil)

	_, err := uc.Cancel(ctx, "b-1")
	require.Error(t, err)

	bg := context.Background()
	b, ok := Find(bookings.Snapshot(bg), byBookingID("b-1"))
	require.True(t, ok)
	assert.Equal(t, entity.BookingConfirmed, b.Status)
	assert.Equal(t, 4500.0, leads.Snapshot(bg)[0].TotalSpend)
}

func bookingIDs(bookings []entity.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}
