package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Treatments) == 0 {
		return fmt.Errorf("%w: at least one treatment is required", ErrInvalidInput)
	}

	for i, t := range req.Treatments {
		if err := validateTreatment(t); err != nil {
			return fmt.Errorf("%w: treatments[%d]: %v", ErrInvalidInput, i, err)
		}
	}

	return nil
}

// validateTreatment проверяет одну процедуру из набора
func validateTreatment(t domain.Treatment) error {
	if t.ID == "" {
		return errors.New("id is required")
	}

	if t.DurationMinutes <= 0 {
		return errors.New("duration must be greater than 0")
	}

	// Без комнат процедуру невозможно разместить
	if len(t.RoomIDs) == 0 {
		return errors.New("room_id_list must not be empty")
	}

	for _, roomID := range t.RoomIDs {
		if roomID == "" {
			return errors.New("room id must not be empty")
		}
	}

	return nil
}
