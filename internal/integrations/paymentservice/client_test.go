package paymentservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func chargeRequest() *ChargeRequest {
	return &ChargeRequest{
		BookingID: 42,
		UserID:    1001,
		Amount:    600,
		Method:    "card",
	}
}

func TestClient_Charge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/charges", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ChargeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(42), req.BookingID)
		assert.Equal(t, 600.0, req.Amount)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ChargeResponse{TransactionID: "txn-123", Status: "success"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, noopLogger{})

	resp, err := client.Charge(context.Background(), chargeRequest())
	require.NoError(t, err)
	assert.Equal(t, "txn-123", resp.TransactionID)
	assert.Equal(t, "success", resp.Status)
}

func TestClient_Charge_DeclinedByStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, noopLogger{})

	_, err := client.Charge(context.Background(), chargeRequest())
	require.ErrorIs(t, err, ErrPaymentDeclined)
}

func TestClient_Charge_DeclinedInBody(t *testing.T) {
	// Статус declined может прийти и с кодом 200
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ChargeResponse{TransactionID: "txn-456", Status: "declined"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, noopLogger{})

	_, err := client.Charge(context.Background(), chargeRequest())
	require.ErrorIs(t, err, ErrPaymentDeclined)
}

func TestClient_Charge_BadRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, noopLogger{})

	_, err := client.Charge(context.Background(), chargeRequest())
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Charge_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, noopLogger{})

	_, err := client.Charge(context.Background(), chargeRequest())
	require.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "500")
}
