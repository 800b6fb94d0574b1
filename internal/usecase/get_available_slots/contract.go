package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	// GetByDate получает все записи на указанную дату
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	// GetAll получает всех сотрудников с недельным расписанием, порядок стабилен
	GetAll(ctx context.Context) ([]*domain.StaffMember, error)
}

// ShopRepository интерфейс репозитория информации о салоне
type ShopRepository interface {
	// GetShopInfo получает запись о салоне с часами работы
	GetShopInfo(ctx context.Context) (*domain.ShopInfo, error)
}

// MetricsRecorder интерфейс для записи бизнес-метрик поиска
type MetricsRecorder interface {
	ObserveSlotsFound(count int, staffRequired bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
