package get_parking_lot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/parkinglots"
)

const (
	msgInvalidLotID = "некорректный ID парковки"
	msgNotFound     = "парковка не найдена"
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

// Handle GET /api/v1/parking-lots/{lotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lotID, err := strconv.ParseInt(vars["lotId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /parking-lots/{id} - Invalid lot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLotID)
		return
	}

	lot, err := h.service.GetByID(r.Context(), lotID)
	if err != nil {
		switch {
		case errors.Is(err, parkinglots.ErrLotNotFound):
			h.logger.Warn("GET /parking-lots/{id} - Parking lot not found: lot_id=%d", lotID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /parking-lots/{id} - Failed to get parking lot: lot_id=%d, error=%v", lotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /parking-lots/{id} - Parking lot retrieved successfully: lot_id=%d", lotID)
	handlers.RespondJSON(w, http.StatusOK, lot)
}
