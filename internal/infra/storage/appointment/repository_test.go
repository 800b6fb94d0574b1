package appointment

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "appointment_date", "start_time", "end_time", "employee_id_list", "room_id_list"}

func TestRepository_GetByDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	start := date.Add(9 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, appointment_date, start_time, end_time, employee_id_list, room_id_list FROM appointments WHERE appointment_date = $1 ORDER BY start_time ASC, id ASC",
	)).
		WithArgs("2026-10-19").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("apt-1", date, start, start.Add(time.Hour), "{emp-1}", "{R1,R2}").
			AddRow("apt-2", date, start.Add(2*time.Hour), start.Add(3*time.Hour), "{}", "{R3}"))

	repo := NewRepository(db)
	appointments, err := repo.GetByDate(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, appointments, 2)

	assert.Equal(t, "apt-1", appointments[0].ID)
	assert.Equal(t, []string{"emp-1"}, appointments[0].StaffIDs)
	assert.Equal(t, []string{"R1", "R2"}, appointments[0].RoomIDs)
	assert.True(t, appointments[0].StartTime.Equal(start))
	assert.Empty(t, appointments[1].StaffIDs)
	assert.Equal(t, []string{"R3"}, appointments[1].RoomIDs)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByDate_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM appointments").WillReturnError(errors.New("connection refused"))

	_, err = NewRepository(db).GetByDate(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRepository_GetByDate_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM appointments").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("apt-1", "not a date", "x", "y", "{}", "{}"))

	_, err = NewRepository(db).GetByDate(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrScanRow)
}
