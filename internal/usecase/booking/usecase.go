package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/sendbyop/booking-service/internal/infrastructure/metrics"
	"github.com/shopspring/decimal"
)

type BookingUsecase interface {
	GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	ConfirmBooking(ctx context.Context, bookingID, travelerID string) (*domain.Booking, error)
	RejectBooking(ctx context.Context, bookingID, travelerID, reason string) (*domain.Booking, error)
	PayBooking(ctx context.Context, bookingID, customerID string, amount decimal.Decimal) (*domain.Booking, error)

	HandToTraveler(ctx context.Context, bookingID, customerID string) (*domain.Booking, error)
	ReceiveByTraveler(ctx context.Context, bookingID, travelerID string) (*domain.Booking, error)
	MarkInTransit(ctx context.Context, bookingID, travelerID string) (*domain.Booking, error)
	DeliverToReceiver(ctx context.Context, bookingID, travelerID string) (*domain.Booking, error)
	MarkDelivered(ctx context.Context, bookingID, travelerID string) (*domain.Booking, error)
	ConfirmByReceiver(ctx context.Context, bookingID, receiverID string) (*domain.Booking, error)

	CancelByClient(ctx context.Context, bookingID, customerID, reason string) (*domain.Booking, error)
	RefundBooking(ctx context.Context, bookingID string) (*domain.Booking, error)

	CancelUnpaidPastDeadline(ctx context.Context, now time.Time) (*domain.SweepReport, error)
}

// AuditLogger records lifecycle changes for the audit trail. Optional;
// a nil logger disables auditing.
type AuditLogger interface {
	LogStatusChange(ctx context.Context, bookingID string, from, to domain.BookingStatus, actor domain.Actor, reason string) error
}

type DefaultBookingUsecase struct {
	BookingRepo  domain.BookingRepository
	SettingsRepo domain.SettingsRepository
	Publisher    domain.EventPublisher
	Metrics      *metrics.BookingMetrics

	// Audit, when set, receives every applied transition.
	Audit AuditLogger
}

func NewDefaultBookingUsecase(
	bookingRepo domain.BookingRepository,
	settingsRepo domain.SettingsRepository,
	publisher domain.EventPublisher,
	bookingMetrics *metrics.BookingMetrics) *DefaultBookingUsecase {

	return &DefaultBookingUsecase{
		BookingRepo:  bookingRepo,
		SettingsRepo: settingsRepo,
		Publisher:    publisher,
		Metrics:      bookingMetrics,
	}
}

func (uc *DefaultBookingUsecase) GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return uc.BookingRepo.GetByID(ctx, bookingID)
}

// applyTransition runs the standard load -> transition -> optimistic save
// sequence shared by every lifecycle operation. ownedBy is matched against
// the booking party the actor must be; empty string skips the check.
func (uc *DefaultBookingUsecase) applyTransition(
	ctx context.Context,
	bookingID string,
	target domain.BookingStatus,
	actor domain.Actor,
	ownedBy string,
	paymentTimeout time.Duration,
) (*domain.Booking, error) {

	b, err := uc.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if ownedBy != "" && !bookingOwnedBy(b, actor, ownedBy) {
		return nil, domain.ErrNotOwner
	}

	expected := b.Status
	if err := domain.Transition(b, target, actor, time.Now(), paymentTimeout); err != nil {
		return nil, err
	}

	if err := uc.BookingRepo.UpdateFromStatus(ctx, b, expected); err != nil {
		return nil, err
	}

	uc.audit(ctx, b.ID, expected, b.Status, actor, "")
	uc.publishBookingEvent(b, "")
	return b, nil
}

func (uc *DefaultBookingUsecase) audit(ctx context.Context, bookingID string, from, to domain.BookingStatus, actor domain.Actor, reason string) {
	if uc.Audit == nil {
		return
	}
	if err := uc.Audit.LogStatusChange(ctx, bookingID, from, to, actor, reason); err != nil {
		slog.Error("failed to write booking audit row",
			"booking_id", bookingID, "to", to, "error", err.Error())
	}
}

func bookingOwnedBy(b *domain.Booking, actor domain.Actor, id string) bool {
	switch actor {
	case domain.ActorClient:
		return b.CustomerID == id
	case domain.ActorTraveler:
		return b.TravelerID == id
	default:
		return true
	}
}

func (uc *DefaultBookingUsecase) publishBookingEvent(b *domain.Booking, reason string) {
	if uc.Publisher == nil {
		return
	}
	event := domain.BookingEvent{
		BookingID:  b.ID,
		CustomerID: b.CustomerID,
		TravelerID: b.TravelerID,
		Status:     b.Status,
		Price:      b.Price,
		Reason:     reason,
	}
	if err := uc.Publisher.PublishBooking(event); err != nil {
		slog.Error("failed to publish booking event",
			"booking_id", b.ID, "status", b.Status, "error", err.Error())
	}
}

func (uc *DefaultBookingUsecase) settings(ctx context.Context) (domain.PlatformSettings, error) {
	if uc.SettingsRepo == nil {
		return domain.DefaultPlatformSettings(), nil
	}
	return uc.SettingsRepo.Get(ctx)
}
