package parkinglots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	lotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parkinglot"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkinglots/models"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeLotRepo struct {
	lots []*domain.ParkingLot
}

func (f *fakeLotRepo) List(_ context.Context) ([]*domain.ParkingLot, error) {
	return f.lots, nil
}

func (f *fakeLotRepo) GetByID(_ context.Context, id int64) (*domain.ParkingLot, error) {
	for _, lot := range f.lots {
		if lot.ID == id {
			return lot, nil
		}
	}
	return nil, lotRepo.ErrLotNotFound
}

func TestService_List(t *testing.T) {
	repo := &fakeLotRepo{lots: []*domain.ParkingLot{
		{ID: 1, Name: "Центральная парковка", Capacity: 50, AvailableSpots: 12, PricePerHour: 150},
		{ID: 2, Name: "Мини-парковка", Capacity: 2, AvailableSpots: 0, PricePerHour: 200},
	}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Lots, 2)

	assert.Equal(t, models.LotStatusAvailable, resp.Lots[0].Status)
	assert.Equal(t, models.LotStatusFull, resp.Lots[1].Status)
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeLotRepo{lots: []*domain.ParkingLot{
		{ID: 1, Name: "Центральная парковка", Capacity: 50, AvailableSpots: 50},
	}}
	svc := NewService(repo, noopLogger{})

	lot, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Центральная парковка", lot.Name)
	assert.Equal(t, models.LotStatusAvailable, lot.Status)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeLotRepo{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrLotNotFound)
}
