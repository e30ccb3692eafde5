package get_booking_options

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SpotTypeOption описание типа места для формы бронирования
type SpotTypeOption struct {
	Tag        string  `json:"tag"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// OptionsResponse справочник опций для создания бронирования
type OptionsResponse struct {
	SpotTypes      []SpotTypeOption `json:"spotTypes"`
	DurationHours  []int            `json:"durationHours"`
	PaymentMethods []string         `json:"paymentMethods"`
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/booking-options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	defs := domain.SpotTypes()

	resp := OptionsResponse{
		SpotTypes:      make([]SpotTypeOption, 0, len(defs)),
		DurationHours:  domain.DurationChoices,
		PaymentMethods: domain.ValidPaymentMethods,
	}
	for _, def := range defs {
		resp.SpotTypes = append(resp.SpotTypes, SpotTypeOption{
			Tag:        def.Tag,
			Label:      def.Label,
			Multiplier: def.Multiplier,
		})
	}

	h.logger.Info("GET /booking-options - Options retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, resp)
}
