package shop

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// ShopRepository интерфейс репозитория информации о салоне
type ShopRepository interface {
	GetShopInfo(ctx context.Context) (*domain.ShopInfo, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
