package tickets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:           42,
		ParkingLotID: 7,
		UserID:       1001,
		SpotType:     "vip",
		SpotNumber:   "A17",
		StartTime:    time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC),
		TotalPrice:   600,
		Status:       domain.StatusConfirmed,
		LotName:      "Центральная парковка",
		LotLocation:  "ул. Тверская, 12",
	}
}

func TestRenderTicket_Format(t *testing.T) {
	got := RenderTicket(testBooking())

	want := "Booking ID: 42\n" +
		"Parking Lot: Центральная парковка\n" +
		"Address: ул. Тверская, 12\n" +
		"Spot Number: A17\n" +
		"Start/End: 2025-06-01T10:00:00Z - 2025-06-01T13:00:00Z\n" +
		"Total Price: 600.00\n" +
		"Status: confirmed\n"

	assert.Equal(t, want, got)
}

func TestService_Render(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: testBooking()}}
	svc := NewService(repo, noopLogger{})

	ticket, err := svc.Render(context.Background(), 42, 1001)
	require.NoError(t, err)
	assert.Contains(t, ticket, "Booking ID: 42")
}

func TestService_Render_NotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}}, noopLogger{})

	_, err := svc.Render(context.Background(), 99, 1001)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Render_AccessDenied(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: testBooking()}}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Render(context.Background(), 42, 2002)
	require.ErrorIs(t, err, ErrAccessDenied)
}
