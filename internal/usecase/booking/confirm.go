package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
)

// ConfirmBooking moves a pending booking to CONFIRMED_UNPAID on behalf of
// the traveler and starts the payment countdown from the platform's
// payment timeout.
func (uc *DefaultBookingUsecase) ConfirmBooking(ctx context.Context, bookingID, travelerID string) (*domain.Booking, error) {
	settings, err := uc.settings(ctx)
	if err != nil {
		return nil, err
	}

	b, err := uc.applyTransition(ctx, bookingID, domain.StatusConfirmedUnpaid, domain.ActorTraveler, travelerID, settings.PaymentTimeout())
	if err != nil {
		return nil, err
	}

	slog.Info("booking confirmed",
		"booking_id", b.ID, "traveler_id", travelerID, "payment_deadline", b.PaymentDeadline)
	return b, nil
}

// RejectBooking lets the traveler decline a pending booking.
func (uc *DefaultBookingUsecase) RejectBooking(ctx context.Context, bookingID, travelerID, reason string) (*domain.Booking, error) {
	b, err := uc.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.TravelerID != travelerID {
		return nil, domain.ErrNotOwner
	}

	expected := b.Status
	if err := domain.Transition(b, domain.StatusCancelledByTraveler, domain.ActorTraveler, time.Now(), 0); err != nil {
		return nil, err
	}
	if reason != "" {
		b.CancellationReason = reason
	}

	if err := uc.BookingRepo.UpdateFromStatus(ctx, b, expected); err != nil {
		return nil, err
	}

	uc.audit(ctx, b.ID, expected, b.Status, domain.ActorTraveler, reason)
	uc.publishBookingEvent(b, reason)
	slog.Info("booking rejected by traveler", "booking_id", b.ID, "traveler_id", travelerID)
	return b, nil
}
