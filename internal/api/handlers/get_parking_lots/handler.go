package get_parking_lots

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	service ParkingLotService
	logger  Logger
}

func NewHandler(service ParkingLotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/parking-lots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /parking-lots - Failed to list parking lots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /parking-lots - Parking lots retrieved successfully: count=%d", len(result.Lots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
