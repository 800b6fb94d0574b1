package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	"github.com/m04kA/SMC-TimeslotService/pkg/psqlbuilder"
)

// dateColumnFormat формат значения колонки appointment_date (DATE)
const dateColumnFormat = "2006-01-02"

// Repository репозиторий для чтения записей на приём
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает все записи на указанную дату, отсортированные по времени начала.
// Используется при поиске свободных слотов: возвращает снимок занятости дня,
// включая запись, которую клиент переносит (её исключает usecase).
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"appointment_date",
		"start_time",
		"end_time",
		"employee_id_list",
		"room_id_list",
	).
		From("appointments").
		Where(squirrel.Eq{"appointment_date": date.Format(dateColumnFormat)}).
		OrderBy("start_time ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appointment domain.Appointment

		err := rows.Scan(
			&appointment.ID,
			&appointment.Date,
			&appointment.StartTime,
			&appointment.EndTime,
			pq.Array(&appointment.StaffIDs),
			pq.Array(&appointment.RoomIDs),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appointments = append(appointments, &appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
