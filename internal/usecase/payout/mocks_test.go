package payout

import (
	"context"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock collaborators
type MockBookingRepo struct{ mock.Mock }
type MockPayoutRepo struct{ mock.Mock }
type MockSettingsRepo struct{ mock.Mock }
type MockBankDetails struct{ mock.Mock }
type MockGateway struct{ mock.Mock }
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

func (m *MockPayoutRepo) Create(ctx context.Context, payout *domain.Payout) error {
	return m.Called(ctx, payout).Error(0)
}

func (m *MockPayoutRepo) Save(ctx context.Context, payout *domain.Payout) error {
	return m.Called(ctx, payout).Error(0)
}

func (m *MockPayoutRepo) GetByBookingID(ctx context.Context, bookingID string) (*domain.Payout, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payout), args.Error(1)
}

func (m *MockPayoutRepo) GetByTravelerID(ctx context.Context, travelerID string) ([]*domain.Payout, error) {
	args := m.Called(ctx, travelerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payout), args.Error(1)
}

func (m *MockPayoutRepo) HasActivePayout(ctx context.Context, bookingID string) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPayoutRepo) FindStaleProcessing(ctx context.Context, updatedBefore time.Time) ([]*domain.Payout, error) {
	args := m.Called(ctx, updatedBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payout), args.Error(1)
}

func (m *MockSettingsRepo) Get(ctx context.Context) (domain.PlatformSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PlatformSettings), args.Error(1)
}

func (m *MockSettingsRepo) Save(ctx context.Context, settings domain.PlatformSettings) (domain.PlatformSettings, error) {
	args := m.Called(ctx, settings)
	return args.Get(0).(domain.PlatformSettings), args.Error(1)
}

func (m *MockBankDetails) GetDecryptedByOwner(ctx context.Context, ownerID string) (*domain.BankInfo, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankInfo), args.Error(1)
}

func (m *MockGateway) Disburse(ctx context.Context, req domain.DisbursementRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockPublisher) PublishBooking(event domain.BookingEvent) error {
	return m.Called(event).Error(0)
}

func (m *MockPublisher) PublishPayout(event domain.PayoutEvent) error {
	return m.Called(event).Error(0)
}
