package get_available_slots

import (
	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// searchStats счетчики поиска, используются только для логирования
type searchStats struct {
	positions     int // проверенные позиции окна
	noRooms       int // отклонены: нет свободных комнат
	noStaff       int // отклонены: нет подходящего сотрудника
	staffConflict int // отклонены: назначенный сотрудник занят записью
	unstaffed     int // процедуры без отдельного сотрудника в принятых слотах
}

// findPossibleSlots сдвигает окно длиной в сумму длительностей процедур по рабочему дню
// с шагом domain.SlotStep и возвращает все подходящие позиции.
// Окно, заканчивающееся ровно в конце рабочего дня, включается.
func findPossibleSlots(
	treatments []domain.Treatment,
	window domain.WorkingWindow,
	appointments []*domain.Appointment,
	pool []domain.StaffShift,
	excludeID string,
) ([]domain.CandidateSlot, searchStats) {
	var stats searchStats
	slots := make([]domain.CandidateSlot, 0)

	duration := domain.TotalDuration(treatments)
	staffRequired := domain.RequiresStaff(treatments)

	for start := window.Start; !start.Add(duration).After(window.End); start = start.Add(domain.SlotStep) {
		end := start.Add(duration)
		stats.positions++

		// 1. Ресурсы, занятые записями в этом окне
		busy := extractConflicts(appointments, start, end, excludeID)

		// 2. Комнаты
		rooms, ok := resolveRooms(treatments, busy.rooms)
		if !ok {
			stats.noRooms++
			continue
		}

		// 3. Сотрудники
		staffIDs := []string{}
		if staffRequired {
			assignment, ok := resolveStaff(treatments, pool, start, end)
			if !ok {
				stats.noStaff++
				continue
			}

			// 4. Назначенный сотрудник не должен быть занят другой записью
			if busy.staff.HasAny(assignment.staff.Slice()) {
				stats.staffConflict++
				continue
			}

			staffIDs = assignment.staff.Slice()
			stats.unstaffed += assignment.unstaffed
		}

		slots = append(slots, domain.CandidateSlot{
			Start:    start,
			End:      end,
			StaffIDs: staffIDs,
			RoomIDs:  rooms,
		})
	}

	return slots, stats
}
