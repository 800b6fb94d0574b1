package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// Request модель запроса на поиск свободных слотов
type Request struct {
	Date          time.Time          // Дата поиска (полночь в часовом поясе салона)
	Treatments    []domain.Treatment // Набор процедур, порядок важен для распределения комнат и сотрудников
	AppointmentID string             // ID переносимой записи, пусто если это новая запись
}

// Response модель ответа со списком слотов
type Response struct {
	Date   time.Time              // Дата, на которую искались слоты
	Window domain.WorkingWindow   // Рабочее окно с учетом сдвига для сегодняшнего дня
	Slots  []domain.CandidateSlot // Найденные слоты в порядке времени начала
}
