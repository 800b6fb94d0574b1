package shop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
	shopRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/shop"
	"github.com/m04kA/SMC-TimeslotService/pkg/logger"
)

type mockShopRepository struct {
	GetShopInfoFunc func(ctx context.Context) (*domain.ShopInfo, error)
}

func (m *mockShopRepository) GetShopInfo(ctx context.Context) (*domain.ShopInfo, error) {
	return m.GetShopInfoFunc(ctx)
}

type fixedTime time.Time

func (f fixedTime) Now() time.Time {
	return time.Time(f)
}

// 19.10.2026 is a Monday
var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func newTestService(shop *domain.ShopInfo, err error, now time.Time) *Service {
	svc := NewService(&mockShopRepository{GetShopInfoFunc: func(ctx context.Context) (*domain.ShopInfo, error) {
		return shop, err
	}}, logger.Nop())
	svc.timeProvider = fixedTime(now)
	return svc
}

func mondayShop() *domain.ShopInfo {
	return &domain.ShopInfo{OpeningHours: []domain.OpeningHours{
		{Day: time.Monday, OpeningTime: "09:00", ClosingTime: "17:00", Opened: true},
	}}
}

func TestService_GetWorkingHours(t *testing.T) {
	t.Run("future date", func(t *testing.T) {
		resp, err := newTestService(mondayShop(), nil, monday.AddDate(0, 0, -3)).GetWorkingHours(context.Background(), monday)
		require.NoError(t, err)
		assert.Equal(t, monday.Add(9*time.Hour), resp.Start)
		assert.Equal(t, monday.Add(17*time.Hour), resp.End)
		assert.False(t, resp.Adjusted)
		assert.False(t, resp.Empty)
	})

	t.Run("today", func(t *testing.T) {
		now := monday.Add(14*time.Hour + 59*time.Minute)
		resp, err := newTestService(mondayShop(), nil, now).GetWorkingHours(context.Background(), monday)
		require.NoError(t, err)
		assert.True(t, resp.Adjusted)
		assert.Equal(t, monday.Add(17*time.Hour), resp.Start)
		assert.True(t, resp.Empty)
	})

	t.Run("today before opening", func(t *testing.T) {
		now := monday.Add(4*time.Hour + 30*time.Minute)
		resp, err := newTestService(mondayShop(), nil, now).GetWorkingHours(context.Background(), monday)
		require.NoError(t, err)
		assert.True(t, resp.Adjusted)
		assert.Equal(t, monday.Add(7*time.Hour), resp.Start)
		assert.Equal(t, monday.Add(17*time.Hour), resp.End)
		assert.False(t, resp.Empty)
	})
}

func TestService_GetWorkingHours_Errors(t *testing.T) {
	now := monday.AddDate(0, 0, -1)

	_, err := newTestService(mondayShop(), nil, now).GetWorkingHours(context.Background(), monday.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, ErrShopClosed)

	_, err = newTestService(nil, shopRepo.ErrShopNotFound, now).GetWorkingHours(context.Background(), monday)
	assert.ErrorIs(t, err, ErrShopClosed)

	_, err = newTestService(nil, errors.New("db down"), now).GetWorkingHours(context.Background(), monday)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = newTestService(mondayShop(), nil, now).GetWorkingHours(context.Background(), time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
