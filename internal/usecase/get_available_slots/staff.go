package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// resolveEligibleStaff оставляет сотрудников, работающих в день date, и вычисляет их смены.
// Считается один раз на запрос, порядок сотрудников сохраняется.
func resolveEligibleStaff(members []*domain.StaffMember, date time.Time) ([]domain.StaffShift, error) {
	shifts := make([]domain.StaffShift, 0, len(members))

	for _, m := range members {
		shift, ok, err := m.ShiftOn(date)
		if err != nil {
			return nil, fmt.Errorf("staff member %s: %w", m.ID, err)
		}
		if !ok {
			continue
		}
		shifts = append(shifts, shift)
	}

	return shifts, nil
}

// staffAssignment результат распределения сотрудников в одном окне
type staffAssignment struct {
	staff     idSet
	unstaffed int // процедуры, для которых все подходящие сотрудники уже назначены на другие процедуры
}

// resolveStaff назначает сотрудников на процедуры, требующие сотрудника.
//
// Для каждой такой процедуры берутся сотрудники, которые умеют её делать и чья смена
// целиком покрывает окно [start, end). Пустой список кандидатов делает окно неподходящим.
// Назначается первый кандидат, ещё не назначенный в этом окне. Если все кандидаты уже
// назначены, новый сотрудник не добавляется и окно не отклоняется (счетчик unstaffed).
// Занятость сотрудников записями здесь не проверяется, это делает findPossibleSlots.
func resolveStaff(treatments []domain.Treatment, pool []domain.StaffShift, start, end time.Time) (staffAssignment, bool) {
	result := staffAssignment{staff: newIDSet()}

	for _, t := range treatments {
		if !t.RequiresStaff {
			continue
		}

		candidates := candidatesFor(t, pool, start, end)
		if len(candidates) == 0 {
			return staffAssignment{}, false
		}

		assigned := false
		for _, c := range candidates {
			if result.staff.Has(c.Member.ID) {
				continue
			}
			result.staff = result.staff.With(c.Member.ID)
			assigned = true
			break
		}

		if !assigned {
			result.unstaffed++
		}
	}

	return result, true
}

// candidatesFor фильтрует пул по умению выполнять процедуру и покрытию окна сменой
func candidatesFor(t domain.Treatment, pool []domain.StaffShift, start, end time.Time) []domain.StaffShift {
	var out []domain.StaffShift
	for _, shift := range pool {
		if shift.Member.CanPerform(t.ID) && shift.Covers(start, end) {
			out = append(out, shift)
		}
	}
	return out
}
