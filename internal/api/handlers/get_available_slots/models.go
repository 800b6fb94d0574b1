package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TimeslotService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-TimeslotService/pkg/types"
)

// TimeslotsRequest HTTP request model
type TimeslotsRequest struct {
	Date          string             `json:"date" validate:"required"` // "10/19/2026"
	Treatments    []TreatmentRequest `json:"treatments" validate:"required,min=1,dive"`
	AppointmentID string             `json:"appointment_id,omitempty"` // при переносе записи
}

// TreatmentRequest процедура из запроса
type TreatmentRequest struct {
	ID                 string   `json:"id" validate:"required"`
	Name               string   `json:"name"`
	Duration           int      `json:"duration" validate:"gt=0"` // минуты
	IsEmployeeRequired bool     `json:"is_employee_required"`
	RoomIDList         []string `json:"room_id_list" validate:"required,min=1,dive,required"`
}

// TimeslotResponse HTTP response model одного слота
type TimeslotResponse struct {
	StartTime      string   `json:"start_time"` // RFC3339
	EndTime        string   `json:"end_time"`
	EmployeeIDList []string `json:"employee_id_list"`
	RoomIDList     []string `json:"room_id_list"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата интерпретируется в часовом поясе салона.
func (r *TimeslotsRequest) ToUseCaseRequest(loc *time.Location) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(r.Date, loc)
	if err != nil {
		return nil, err
	}

	treatments := make([]domain.Treatment, len(r.Treatments))
	for i, t := range r.Treatments {
		treatments[i] = domain.Treatment{
			ID:              t.ID,
			Name:            t.Name,
			DurationMinutes: t.Duration,
			RequiresStaff:   t.IsEmployeeRequired,
			RoomIDs:         t.RoomIDList,
		}
	}

	return &getAvailableSlots.Request{
		Date:          date,
		Treatments:    treatments,
		AppointmentID: r.AppointmentID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Пустой результат сериализуется как [], списки внутри слота никогда не null.
func FromUseCaseResponse(resp *getAvailableSlots.Response) []TimeslotResponse {
	out := make([]TimeslotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		out[i] = TimeslotResponse{
			StartTime:      slot.Start.Format(time.RFC3339),
			EndTime:        slot.End.Format(time.RFC3339),
			EmployeeIDList: nonNil(slot.StaffIDs),
			RoomIDList:     nonNil(slot.RoomIDs),
		}
	}
	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
