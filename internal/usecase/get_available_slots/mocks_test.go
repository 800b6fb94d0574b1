package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

type mockAppointmentRepository struct {
	GetByDateFunc func(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

func (m *mockAppointmentRepository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(ctx, date)
	}
	return nil, nil
}

type mockStaffRepository struct {
	GetAllFunc func(ctx context.Context) ([]*domain.StaffMember, error)
}

func (m *mockStaffRepository) GetAll(ctx context.Context) ([]*domain.StaffMember, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

type mockShopRepository struct {
	GetShopInfoFunc func(ctx context.Context) (*domain.ShopInfo, error)
}

func (m *mockShopRepository) GetShopInfo(ctx context.Context) (*domain.ShopInfo, error) {
	if m.GetShopInfoFunc != nil {
		return m.GetShopInfoFunc(ctx)
	}
	return nil, nil
}

type mockMetrics struct {
	calls         int
	lastCount     int
	staffRequired bool
}

func (m *mockMetrics) ObserveSlotsFound(count int, staffRequired bool) {
	m.calls++
	m.lastCount = count
	m.staffRequired = staffRequired
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}
