package confirm_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/paymentservice"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	// Подменяет статус между проверкой и CAS, моделируя конкурентную отмену
	statusChangedBeforeCAS bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookingRepo) Confirm(_ context.Context, id int64, paymentMethod string) (bool, error) {
	if f.statusChangedBeforeCAS {
		return false, nil
	}
	b, ok := f.bookings[id]
	if !ok || b.Status != domain.StatusActive {
		return false, nil
	}
	b.Status = domain.StatusConfirmed
	b.PaymentMethod = &paymentMethod
	return true, nil
}

type fakePaymentClient struct {
	declined bool
	lastReq  *paymentservice.ChargeRequest
}

func (f *fakePaymentClient) Charge(_ context.Context, req *paymentservice.ChargeRequest) (*paymentservice.ChargeResponse, error) {
	f.lastReq = req
	if f.declined {
		return nil, paymentservice.ErrPaymentDeclined
	}
	return &paymentservice.ChargeResponse{TransactionID: "txn-123", Status: "success"}, nil
}

func activeBooking() *domain.Booking {
	return &domain.Booking{
		ID:           42,
		ParkingLotID: 7,
		UserID:       1001,
		TotalPrice:   600,
		Status:       domain.StatusActive,
	}
}

func TestUseCase_Execute(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: activeBooking()}}
	payment := &fakePaymentClient{}
	uc := NewUseCase(repo, payment, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:  42,
		UserID:     1001,
		Method:     domain.PaymentMethodCard,
		CardNumber: ptr.Ptr("4242424242424242"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.PaymentMethodCard, resp.PaymentMethod)
	assert.Equal(t, "txn-123", resp.TransactionID)

	// Списывается сохраненная цена бронирования
	require.NotNil(t, payment.lastReq)
	assert.Equal(t, 600.0, payment.lastReq.Amount)
	require.NotNil(t, payment.lastReq.CardNumber)
	assert.Equal(t, "4242424242424242", *payment.lastReq.CardNumber)

	assert.Equal(t, domain.StatusConfirmed, repo.bookings[42].Status)
	require.NotNil(t, repo.bookings[42].PaymentMethod)
	assert.Equal(t, domain.PaymentMethodCard, *repo.bookings[42].PaymentMethod)
}

func TestUseCase_Execute_InvalidPaymentMethod(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: activeBooking()}}
	payment := &fakePaymentClient{}
	uc := NewUseCase(repo, payment, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		UserID:    1001,
		Method:    "bitcoin",
	})
	require.ErrorIs(t, err, ErrInvalidPaymentMethod)
	assert.Nil(t, payment.lastReq, "no charge attempted")
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	uc := NewUseCase(repo, &fakePaymentClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 99,
		UserID:    1001,
		Method:    domain.PaymentMethodUPI,
	})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_Execute_AccessDenied(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: activeBooking()}}
	uc := NewUseCase(repo, &fakePaymentClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		UserID:    2002,
		Method:    domain.PaymentMethodCard,
	})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestUseCase_Execute_AlreadyConfirmed(t *testing.T) {
	b := activeBooking()
	b.Status = domain.StatusConfirmed
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: b}}
	payment := &fakePaymentClient{}
	uc := NewUseCase(repo, payment, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		UserID:    1001,
		Method:    domain.PaymentMethodCard,
	})
	require.ErrorIs(t, err, ErrCannotConfirm)
	assert.Nil(t, payment.lastReq, "no double charge")
}

func TestUseCase_Execute_PaymentDeclined(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{42: activeBooking()}}
	uc := NewUseCase(repo, &fakePaymentClient{declined: true}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		UserID:    1001,
		Method:    domain.PaymentMethodCard,
	})
	require.ErrorIs(t, err, ErrPaymentDeclined)

	// Отклоненный платеж не меняет статус - можно повторить попытку
	assert.Equal(t, domain.StatusActive, repo.bookings[42].Status)
}

func TestUseCase_Execute_StatusChangedConcurrently(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings:               map[int64]*domain.Booking{42: activeBooking()},
		statusChangedBeforeCAS: true,
	}
	uc := NewUseCase(repo, &fakePaymentClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		UserID:    1001,
		Method:    domain.PaymentMethodCash,
	})
	require.ErrorIs(t, err, ErrCannotConfirm)
}
