package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-TimeslotService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается MM/DD/YYYY"
	msgShopClosed         = "салон не работает в выбранную дату"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

// NewHandler создает обработчик. location часовой пояс салона, в котором разбирается дата.
func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/timeslots
// Все ошибки возвращаются как 400 с телом {"error": ...}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req TimeslotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /timeslots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /timeslots - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /timeslots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrShopClosed):
			h.logger.Warn("POST /timeslots - Shop closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgShopClosed)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("POST /timeslots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /timeslots - Failed to find slots: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, err.Error())
		}
		return
	}

	h.logger.Info("POST /timeslots - Slots found: date=%s, treatments=%d, slots_count=%d",
		req.Date, len(req.Treatments), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
