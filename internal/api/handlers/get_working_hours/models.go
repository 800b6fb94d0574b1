package get_working_hours

import (
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/service/shop/models"
	"github.com/m04kA/SMC-TimeslotService/pkg/types"
)

// WorkingHoursResponse HTTP response model
type WorkingHoursResponse struct {
	Date      string `json:"date"`       // MM/DD/YYYY
	StartTime string `json:"start_time"` // RFC3339
	EndTime   string `json:"end_time"`
	Adjusted  bool   `json:"adjusted"`
	Empty     bool   `json:"empty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.WorkingHoursResponse) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		Date:      types.FormatDate(resp.Date),
		StartTime: resp.Start.Format(time.RFC3339),
		EndTime:   resp.End.Format(time.RFC3339),
		Adjusted:  resp.Adjusted,
		Empty:     resp.Empty,
	}
}
