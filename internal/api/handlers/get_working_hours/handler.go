package get_working_hours

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/api/handlers"
	"github.com/m04kA/SMC-TimeslotService/internal/service/shop"
	"github.com/m04kA/SMC-TimeslotService/pkg/types"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается MM/DD/YYYY"
	msgShopClosed  = "салон не работает в выбранную дату"
)

type Handler struct {
	service  ShopService
	location *time.Location
	logger   Logger
}

func NewHandler(service ShopService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/working-hours
// Query params: date (required, MM/DD/YYYY)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /working-hours - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := types.ParseDate(dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /working-hours - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetWorkingHours(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, shop.ErrShopClosed):
			h.logger.Info("GET /working-hours - Shop closed: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgShopClosed)

		case errors.Is(err, shop.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /working-hours - Failed to get working hours: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /working-hours - Working hours retrieved: date=%s, adjusted=%t", dateStr, result.Adjusted)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
