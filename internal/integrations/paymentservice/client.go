package paymentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с PaymentService
// Сервис-заглушка: обрабатывает платеж и возвращает success/declined,
// данные карт здесь не обрабатываются
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PaymentService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Charge проводит платеж за бронирование
// Возвращает ErrPaymentDeclined, если платеж отклонен
func (c *Client) Charge(ctx context.Context, chargeReq *ChargeRequest) (*ChargeResponse, error) {
	url := fmt.Sprintf("%s/internal/charges", c.baseURL)

	body, err := json.Marshal(chargeReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusPaymentRequired:
		return nil, ErrPaymentDeclined
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid charge request", ErrInvalidResponse)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var chargeResp ChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&chargeResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Статус declined может прийти и с кодом 200
	if chargeResp.Status != "success" {
		c.log.Warn("Charge declined for booking_id=%d, status=%s", chargeReq.BookingID, chargeResp.Status)
		return nil, ErrPaymentDeclined
	}

	c.log.Info("Charge succeeded for booking_id=%d, transaction_id=%s", chargeReq.BookingID, chargeResp.TransactionID)
	return &chargeResp, nil
}
