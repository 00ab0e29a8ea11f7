package payout

import (
	"context"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/sendbyop/booking-service/internal/infrastructure/metrics"
)

type PayoutUsecase interface {
	ProcessPayoutForBooking(ctx context.Context, bookingID string) (*domain.Payout, error)
	CancelPayout(ctx context.Context, bookingID, reason string) (*domain.Payout, error)
	GetPayoutForBooking(ctx context.Context, bookingID string) (*domain.Payout, error)
	GetPayoutsForTraveler(ctx context.Context, travelerID string) ([]*domain.Payout, error)
	ProcessAutomaticPayouts(ctx context.Context, now time.Time) (*domain.SweepReport, error)
}

// BankDetailSource yields the decrypted payout destination of a traveler.
type BankDetailSource interface {
	GetDecryptedByOwner(ctx context.Context, ownerID string) (*domain.BankInfo, error)
}

type DefaultPayoutUsecase struct {
	BookingRepo  domain.BookingRepository
	PayoutRepo   domain.PayoutRepository
	SettingsRepo domain.SettingsRepository
	BankDetails  BankDetailSource
	Gateway      domain.DisbursementGateway
	Publisher    domain.EventPublisher
	Metrics      *metrics.BookingMetrics
}

func NewDefaultPayoutUsecase(
	bookingRepo domain.BookingRepository,
	payoutRepo domain.PayoutRepository,
	settingsRepo domain.SettingsRepository,
	bankDetails BankDetailSource,
	gateway domain.DisbursementGateway,
	publisher domain.EventPublisher,
	bookingMetrics *metrics.BookingMetrics) *DefaultPayoutUsecase {

	return &DefaultPayoutUsecase{
		BookingRepo:  bookingRepo,
		PayoutRepo:   payoutRepo,
		SettingsRepo: settingsRepo,
		BankDetails:  bankDetails,
		Gateway:      gateway,
		Publisher:    publisher,
		Metrics:      bookingMetrics,
	}
}

func (uc *DefaultPayoutUsecase) GetPayoutForBooking(ctx context.Context, bookingID string) (*domain.Payout, error) {
	return uc.PayoutRepo.GetByBookingID(ctx, bookingID)
}

func (uc *DefaultPayoutUsecase) GetPayoutsForTraveler(ctx context.Context, travelerID string) ([]*domain.Payout, error) {
	return uc.PayoutRepo.GetByTravelerID(ctx, travelerID)
}
