package get_working_hours

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/service/shop/models"
)

type ShopService interface {
	GetWorkingHours(ctx context.Context, date time.Time) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
