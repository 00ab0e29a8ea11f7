package booking

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/sendbyop/booking-service/internal/money"
)

// CancelByClient cancels a booking on the client's behalf and computes the
// refund they are owed. Cancelling earlier than the platform's deadline
// before departure refunds the full price; later cancellations forfeit the
// configured penalty.
func (uc *DefaultBookingUsecase) CancelByClient(ctx context.Context, bookingID, customerID, reason string) (*domain.Booking, error) {
	b, err := uc.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.CustomerID != customerID {
		return nil, domain.ErrNotOwner
	}
	if !b.Status.CanBeCancelledByClient() {
		return nil, domain.ErrIllegalTransition
	}

	settings, err := uc.settings(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	hoursBeforeDeparture := int(math.Floor(b.DepartureAt.Sub(now).Hours()))
	if hoursBeforeDeparture < 0 {
		hoursBeforeDeparture = 0
	}
	refund := money.CancellationRefund(b.Price, hoursBeforeDeparture, settings)

	expected := b.Status
	if err := domain.Transition(b, domain.StatusCancelledByClient, domain.ActorClient, now, 0); err != nil {
		return nil, err
	}
	b.RefundAmount = &refund
	if reason != "" {
		b.CancellationReason = reason
	}

	if err := uc.BookingRepo.UpdateFromStatus(ctx, b, expected); err != nil {
		return nil, err
	}

	uc.audit(ctx, b.ID, expected, b.Status, domain.ActorClient, reason)
	uc.publishBookingEvent(b, reason)
	if uc.Metrics != nil {
		uc.Metrics.RecordBookingCancelled(string(domain.StatusCancelledByClient))
	}

	slog.Info("booking cancelled by client",
		"booking_id", b.ID,
		"customer_id", customerID,
		"hours_before_departure", hoursBeforeDeparture,
		"refund", refund)
	return b, nil
}

// RefundBooking finalizes a cancelled booking once its refund has been
// paid back to the client.
func (uc *DefaultBookingUsecase) RefundBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, err := uc.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	expected := b.Status
	if err := domain.Transition(b, domain.StatusRefunded, domain.ActorAdmin, time.Now(), 0); err != nil {
		return nil, err
	}

	if err := uc.BookingRepo.UpdateFromStatus(ctx, b, expected); err != nil {
		return nil, err
	}

	uc.audit(ctx, b.ID, expected, b.Status, domain.ActorAdmin, "")
	uc.publishBookingEvent(b, "")
	slog.Info("booking refunded", "booking_id", b.ID, "refund", b.RefundAmount)
	return b, nil
}
