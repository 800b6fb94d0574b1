package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	shopRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/shop"
	"github.com/m04kA/SMC-TimeslotService/pkg/types"
)

// UseCase use case для поиска свободных слотов под набор процедур
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	shopRepo        ShopRepository
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil, если метрики выключены.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	shopRepo ShopRepository,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		shopRepo:        shopRepo,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// snapshot данные, прочитанные один раз перед поиском
type snapshot struct {
	appointments []*domain.Appointment
	staff        []*domain.StaffMember
	shop         *domain.ShopInfo
}

// Execute выполняет поиск свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: date=%s, treatments=%d, reschedule=%q",
		types.FormatDate(req.Date), len(req.Treatments), req.AppointmentID)

	// 2. Читаем записи, сотрудников и настройки салона параллельно
	data, err := uc.load(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Рабочее окно салона на дату
	window, ok := data.shop.WorkingWindow(req.Date)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: shop is closed on %s (%s)", types.FormatDate(req.Date), req.Date.Weekday())
		return nil, fmt.Errorf("%w: %s", ErrShopClosed, req.Date.Weekday())
	}

	// 4. Для сегодняшнего дня сдвигаем начало окна
	window, adjusted := window.WithLeadTime(req.Date, uc.timeProvider.Now())
	if adjusted {
		uc.logger.Info("GetAvailableSlots: same-day search, earliest start moved to %s",
			types.NewTimeString(window.Start))
	}

	// 5. Сотрудники, работающие в этот день
	pool, err := resolveEligibleStaff(data.staff, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve staff shifts: %v", err)
		return nil, fmt.Errorf("%w: resolve staff shifts: %v", ErrDataUnavailable, err)
	}

	// 6. Поиск слотов
	slots, stats := findPossibleSlots(req.Treatments, window, data.appointments, pool, req.AppointmentID)

	if stats.unstaffed > 0 {
		uc.logger.Warn("GetAvailableSlots: %d treatment assignments left without a dedicated staff member", stats.unstaffed)
	}

	if uc.metrics != nil {
		uc.metrics.ObserveSlotsFound(len(slots), domain.RequiresStaff(req.Treatments))
	}

	uc.logger.Info("GetAvailableSlots: found %d slots for date=%s (checked=%d, no_rooms=%d, no_staff=%d, staff_conflict=%d)",
		len(slots), types.FormatDate(req.Date), stats.positions, stats.noRooms, stats.noStaff, stats.staffConflict)

	return &Response{
		Date:   req.Date,
		Window: window,
		Slots:  slots,
	}, nil
}

// load читает три источника параллельно. Любая ошибка прерывает поиск целиком.
func (uc *UseCase) load(ctx context.Context, req *Request) (*snapshot, error) {
	var data snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appointments, err := uc.appointmentRepo.GetByDate(gctx, req.Date)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrDataUnavailable, err)
		}
		data.appointments = appointments
		return nil
	})

	g.Go(func() error {
		staff, err := uc.staffRepo.GetAll(gctx)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get staff: %v", err)
			return fmt.Errorf("%w: failed to get staff: %v", ErrDataUnavailable, err)
		}
		data.staff = staff
		return nil
	})

	g.Go(func() error {
		shop, err := uc.shopRepo.GetShopInfo(gctx)
		if err != nil {
			if errors.Is(err, shopRepo.ErrShopNotFound) {
				uc.logger.Warn("GetAvailableSlots: shop info is not configured")
				return fmt.Errorf("%w: shop info is not configured", ErrShopClosed)
			}
			uc.logger.Error("GetAvailableSlots: failed to get shop info: %v", err)
			return fmt.Errorf("%w: failed to get shop info: %v", ErrDataUnavailable, err)
		}
		data.shop = shop
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if data.shop == nil {
		return nil, fmt.Errorf("%w: shop info is not configured", ErrShopClosed)
	}

	return &data, nil
}
