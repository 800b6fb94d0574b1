package staff

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeslotService/pkg/types"
)

var (
	memberColumns = []string{"id", "name", "treatment_id_list"}
	hoursColumns  = []string{"employee_id", "day_of_week", "start_time", "end_time", "is_working_day"}
)

func TestRepository_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, treatment_id_list FROM employees ORDER BY id ASC",
	)).
		WillReturnRows(sqlmock.NewRows(memberColumns).
			AddRow("emp-1", "Anna", "{t1,t2}").
			AddRow("emp-2", "Boris", "{t2}"))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT employee_id, day_of_week, start_time, end_time, is_working_day FROM employee_working_hours WHERE employee_id IN ($1,$2) ORDER BY employee_id ASC",
	)).
		WithArgs("emp-1", "emp-2").
		WillReturnRows(sqlmock.NewRows(hoursColumns).
			AddRow("emp-1", "Monday", "09:00:00", "17:00:00", true).
			AddRow("emp-1", "Tuesday", "09:00:00", "13:00:00", false).
			AddRow("emp-2", "monday", "12:00", "20:00", true))

	members, err := NewRepository(db).GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.Equal(t, "emp-1", members[0].ID)
	assert.Equal(t, []string{"t1", "t2"}, members[0].TreatmentIDs)
	require.Len(t, members[0].WorkingHours, 2)
	assert.Equal(t, time.Monday, members[0].WorkingHours[0].DayOfWeek)
	assert.Equal(t, types.TimeString("09:00"), members[0].WorkingHours[0].Start)
	assert.False(t, members[0].WorkingHours[1].IsWorkingDay)

	require.Len(t, members[1].WorkingHours, 1)
	assert.Equal(t, types.TimeString("12:00"), members[1].WorkingHours[0].Start)
	assert.Equal(t, types.TimeString("20:00"), members[1].WorkingHours[0].End)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll_NoStaff(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM employees").WillReturnRows(sqlmock.NewRows(memberColumns))

	members, err := NewRepository(db).GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, members)
	require.NoError(t, mock.ExpectationsWereMet(), "working hours are not queried")
}

func TestRepository_GetAll_Errors(t *testing.T) {
	t.Run("employees query fails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM employees").WillReturnError(errors.New("timeout"))

		_, err = NewRepository(db).GetAll(context.Background())
		assert.ErrorIs(t, err, ErrExecQuery)
	})

	t.Run("unknown weekday", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM employees").
			WillReturnRows(sqlmock.NewRows(memberColumns).AddRow("emp-1", "Anna", "{t1}"))
		mock.ExpectQuery("FROM employee_working_hours").
			WillReturnRows(sqlmock.NewRows(hoursColumns).AddRow("emp-1", "Someday", "09:00", "17:00", true))

		_, err = NewRepository(db).GetAll(context.Background())
		assert.ErrorIs(t, err, ErrScanRow)
		assert.ErrorContains(t, err, "emp-1")
	})

	t.Run("malformed time", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM employees").
			WillReturnRows(sqlmock.NewRows(memberColumns).AddRow("emp-1", "Anna", "{t1}"))
		mock.ExpectQuery("FROM employee_working_hours").
			WillReturnRows(sqlmock.NewRows(hoursColumns).AddRow("emp-1", "Monday", "nine", "17:00", true))

		_, err = NewRepository(db).GetAll(context.Background())
		assert.ErrorIs(t, err, ErrScanRow)
	})
}
