package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// conflicts ресурсы, занятые существующими записями в окне
type conflicts struct {
	rooms idSet
	staff idSet
}

// extractConflicts собирает комнаты и сотрудников, занятых записями, которые пересекаются с окном [start, end).
// Запись с id excludeID (переносимая) не учитывается.
func extractConflicts(appointments []*domain.Appointment, start, end time.Time, excludeID string) conflicts {
	var rooms, staff []string

	for _, a := range appointments {
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if !a.Overlaps(start, end) {
			continue
		}
		rooms = append(rooms, a.RoomIDs...)
		staff = append(staff, a.StaffIDs...)
	}

	return conflicts{
		rooms: newIDSet(rooms...),
		staff: newIDSet(staff...),
	}
}
