package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		wantErr bool
	}{
		{name: "active to confirmed", from: StatusActive, to: StatusConfirmed, wantErr: false},
		{name: "active to completed", from: StatusActive, to: StatusCompleted, wantErr: false},
		{name: "active to cancelled", from: StatusActive, to: StatusCancelled, wantErr: false},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted, wantErr: false},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, wantErr: false},
		{name: "confirmed to active", from: StatusConfirmed, to: StatusActive, wantErr: true},
		{name: "completed to cancelled", from: StatusCompleted, to: StatusCancelled, wantErr: true},
		{name: "completed to active", from: StatusCompleted, to: StatusActive, wantErr: true},
		{name: "cancelled to active", from: StatusCancelled, to: StatusActive, wantErr: true},
		{name: "cancelled to confirmed", from: StatusCancelled, to: StatusConfirmed, wantErr: true},
		{name: "cancelled to completed", from: StatusCancelled, to: StatusCompleted, wantErr: true},
		{name: "same status is not a transition", from: StatusActive, to: StatusActive, wantErr: true},
		{name: "unknown status", from: BookingStatus("pending"), to: StatusActive, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.from, tt.to)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTransition)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBooking_Predicates(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusActive}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())

	assert.True(t, (&Booking{Status: StatusActive}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())

	// Подтверждать можно только неоплаченное активное бронирование
	assert.True(t, (&Booking{Status: StatusActive}).CanBeConfirmed())
	assert.False(t, (&Booking{Status: StatusConfirmed}).CanBeConfirmed())

	assert.True(t, (&Booking{Status: StatusCancelled}).IsCancelled())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsCompleted())
}

func TestBooking_IsDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	booking := &Booking{EndTime: now}

	assert.True(t, booking.IsDue(now), "end boundary counts as due")
	assert.True(t, booking.IsDue(now.Add(time.Minute)))
	assert.False(t, booking.IsDue(now.Add(-time.Minute)))
}
