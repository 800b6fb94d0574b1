package get_working_hours

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeslotService/internal/service/shop"
	"github.com/m04kA/SMC-TimeslotService/internal/service/shop/models"
	"github.com/m04kA/SMC-TimeslotService/pkg/logger"
)

type mockShopService struct {
	GetWorkingHoursFunc func(ctx context.Context, date time.Time) (*models.WorkingHoursResponse, error)
}

func (m *mockShopService) GetWorkingHours(ctx context.Context, date time.Time) (*models.WorkingHoursResponse, error) {
	return m.GetWorkingHoursFunc(ctx, date)
}

func get(svc ShopService, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, time.UTC, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &mockShopService{GetWorkingHoursFunc: func(ctx context.Context, date time.Time) (*models.WorkingHoursResponse, error) {
		return &models.WorkingHoursResponse{
			Date:     date,
			Start:    date.Add(13 * time.Hour),
			End:      date.Add(17 * time.Hour),
			Adjusted: true,
		}, nil
	}}

	rec := get(svc, "/api/v1/working-hours?date=10/19/2026")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "10/19/2026",
		"start_time": "2026-10-19T13:00:00Z",
		"end_time": "2026-10-19T17:00:00Z",
		"adjusted": true,
		"empty": false
	}`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	failWith := func(err error) *mockShopService {
		return &mockShopService{GetWorkingHoursFunc: func(ctx context.Context, date time.Time) (*models.WorkingHoursResponse, error) {
			return nil, err
		}}
	}

	assert.Equal(t, http.StatusBadRequest, get(failWith(nil), "/api/v1/working-hours").Code)
	assert.Equal(t, http.StatusBadRequest, get(failWith(nil), "/api/v1/working-hours?date=2026-10-19").Code)
	assert.Equal(t, http.StatusBadRequest, get(failWith(shop.ErrShopClosed), "/api/v1/working-hours?date=10/20/2026").Code)
	assert.Equal(t, http.StatusInternalServerError, get(failWith(errors.New("db")), "/api/v1/working-hours?date=10/20/2026").Code)
}
