package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp    *createBooking.Response
	err     error
	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newRouter(uc CreateBookingUseCase) *mux.Router {
	h := NewHandler(uc, noopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, body, userID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:            1,
		ParkingLotID:  7,
		UserID:        1001,
		SpotType:      "vip",
		SpotNumber:    "A17",
		StartTime:     now,
		EndTime:       now.Add(3 * time.Hour),
		DurationHours: 3,
		TotalPrice:    600,
		Status:        "active",
		LotName:       "Центральная парковка",
		LotLocation:   "ул. Тверская, 12",
		CreatedAt:     now,
		UpdatedAt:     now,
	}}

	rec := doRequest(t, newRouter(uc),
		`{"parkingLotId": 7, "spotType": "vip", "durationHours": 3}`, "1001")

	require.Equal(t, http.StatusCreated, rec.Code)

	// userID берется из заголовка, а не из тела
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(1001), uc.lastReq.UserID)
	assert.Equal(t, int64(7), uc.lastReq.LotID)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "A17", resp.SpotNumber)
	assert.Equal(t, 600.0, resp.TotalPrice)
	assert.Equal(t, "2025-06-01T10:00:00Z", resp.StartTime)
	assert.Equal(t, "2025-06-01T13:00:00Z", resp.EndTime)
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "no spots is conflict", err: createBooking.ErrNoAvailableSpots, wantStatus: http.StatusConflict},
		{name: "lot not found", err: createBooking.ErrLotNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid duration", err: createBooking.ErrInvalidDuration, wantStatus: http.StatusBadRequest},
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal error", err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, newRouter(&fakeUseCase{err: tt.err}),
				`{"parkingLotId": 7, "spotType": "car", "durationHours": 1}`, "1001")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	rec := doRequest(t, newRouter(&fakeUseCase{}), `{not json`, "1001")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_MissingUserHeader(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(t, newRouter(uc),
		`{"parkingLotId": 7, "spotType": "car", "durationHours": 1}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.lastReq)
}
