package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	shopRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/shop"
	"github.com/m04kA/SMC-TimeslotService/internal/service/shop/models"
	"github.com/m04kA/SMC-TimeslotService/pkg/types"
)

// Service сервис для работы с часами работы салона
type Service struct {
	shopRepo     ShopRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса салона
func NewService(shopRepo ShopRepository, logger Logger) *Service {
	return &Service{
		shopRepo:     shopRepo,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// GetWorkingHours возвращает рабочее окно салона на дату.
// Для сегодняшнего дня начало окна сдвигается так же, как при поиске слотов.
func (s *Service) GetWorkingHours(ctx context.Context, date time.Time) (*models.WorkingHoursResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.logger.Info("GetWorkingHours: fetching working hours for date=%s", types.FormatDate(date))

	// 1. Получаем настройки салона
	shop, err := s.shopRepo.GetShopInfo(ctx)
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			s.logger.Warn("GetWorkingHours: shop info is not configured")
			return nil, fmt.Errorf("%w: shop info is not configured", ErrShopClosed)
		}
		s.logger.Error("GetWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}

	// 2. Часы работы на день недели
	window, ok := shop.WorkingWindow(date)
	if !ok {
		s.logger.Warn("GetWorkingHours: shop is closed on %s", date.Weekday())
		return nil, fmt.Errorf("%w: %s", ErrShopClosed, date.Weekday())
	}

	// 3. Сдвиг для сегодняшнего дня
	window, adjusted := window.WithLeadTime(date, s.timeProvider.Now())

	s.logger.Info("GetWorkingHours: date=%s, window=%s-%s, adjusted=%t",
		types.FormatDate(date), types.NewTimeString(window.Start), types.NewTimeString(window.End), adjusted)

	return models.FromWorkingWindow(date, window, adjusted), nil
}
