package booking

import (
	"context"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock repositories
type MockBookingRepo struct{ mock.Mock }
type MockSettingsRepo struct{ mock.Mock }
type MockPublisher struct{ mock.Mock }

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) Save(ctx context.Context, booking *domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepo) UpdateFromStatus(ctx context.Context, booking *domain.Booking, expected domain.BookingStatus) error {
	return m.Called(ctx, booking, expected).Error(0)
}

func (m *MockBookingRepo) FindUnpaidPastDeadline(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindPayoutEligible(ctx context.Context, eligibleBefore time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, eligibleBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockSettingsRepo) Get(ctx context.Context) (domain.PlatformSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PlatformSettings), args.Error(1)
}

func (m *MockSettingsRepo) Save(ctx context.Context, settings domain.PlatformSettings) (domain.PlatformSettings, error) {
	args := m.Called(ctx, settings)
	return args.Get(0).(domain.PlatformSettings), args.Error(1)
}

func (m *MockPublisher) PublishBooking(event domain.BookingEvent) error {
	return m.Called(event).Error(0)
}

func (m *MockPublisher) PublishPayout(event domain.PayoutEvent) error {
	return m.Called(event).Error(0)
}
