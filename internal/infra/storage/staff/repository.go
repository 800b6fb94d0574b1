package staff

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	"github.com/m04kA/SMC-TimeslotService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-TimeslotService/pkg/types"
)

// Repository репозиторий для чтения сотрудников и их недельного расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает всех сотрудников вместе с расписанием.
// Порядок (по id) стабилен: от него зависит, какой сотрудник будет назначен первым.
func (r *Repository) GetAll(ctx context.Context) ([]*domain.StaffMember, error) {
	members, err := r.getMembers(ctx)
	if err != nil {
		return nil, err
	}

	if len(members) == 0 {
		return members, nil
	}

	byID := make(map[string]*domain.StaffMember, len(members))
	ids := make([]string, 0, len(members))
	for _, m := range members {
		byID[m.ID] = m
		ids = append(ids, m.ID)
	}

	if err := r.attachWorkingHours(ctx, ids, byID); err != nil {
		return nil, err
	}

	return members, nil
}

// getMembers читает таблицу employees
func (r *Repository) getMembers(ctx context.Context) ([]*domain.StaffMember, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"treatment_id_list",
	).
		From("employees").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getMembers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getMembers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	members := make([]*domain.StaffMember, 0)
	for rows.Next() {
		var member domain.StaffMember
		if err := rows.Scan(&member.ID, &member.Name, pq.Array(&member.TreatmentIDs)); err != nil {
			return nil, fmt.Errorf("%w: getMembers - scan row: %v", ErrScanRow, err)
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getMembers - rows error: %v", ErrScanRow, err)
	}

	return members, nil
}

// attachWorkingHours читает расписание сотрудников одним запросом и раскладывает по сотрудникам
func (r *Repository) attachWorkingHours(ctx context.Context, ids []string, byID map[string]*domain.StaffMember) error {
	query, args, err := psqlbuilder.Select(
		"employee_id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_working_day",
	).
		From("employee_working_hours").
		Where(squirrel.Eq{"employee_id": ids}).
		OrderBy("employee_id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			employeeID string
			day        string
			wh         domain.StaffWorkingHours
		)

		if err := rows.Scan(&employeeID, &day, &wh.Start, &wh.End, &wh.IsWorkingDay); err != nil {
			return fmt.Errorf("%w: attachWorkingHours - scan row: %v", ErrScanRow, err)
		}

		wh.DayOfWeek, err = types.ParseWeekday(day)
		if err != nil {
			return fmt.Errorf("%w: attachWorkingHours - employee %s: %v", ErrScanRow, employeeID, err)
		}

		if member, ok := byID[employeeID]; ok {
			member.WorkingHours = append(member.WorkingHours, wh)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachWorkingHours - rows error: %v", ErrScanRow, err)
	}

	return nil
}
