package models

import (
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// WorkingHoursResponse рабочее окно салона на дату
type WorkingHoursResponse struct {
	Date     time.Time
	Start    time.Time
	End      time.Time
	Adjusted bool // начало сдвинуто для поиска на сегодня
	Empty    bool // после сдвига в окне не помещается ни один слот
}

// FromWorkingWindow конвертирует domain модель в DTO
func FromWorkingWindow(date time.Time, w domain.WorkingWindow, adjusted bool) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		Date:     date,
		Start:    w.Start,
		End:      w.End,
		Adjusted: adjusted,
		Empty:    w.IsEmpty(),
	}
}
