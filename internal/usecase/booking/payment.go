package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/shopspring/decimal"
)

// PayBooking records a successful client payment and moves the booking to
// CONFIRMED_PAID. Payment is rejected after the deadline even if the
// auto-cancel sweep has not caught the booking yet.
func (uc *DefaultBookingUsecase) PayBooking(ctx context.Context, bookingID, customerID string, amount decimal.Decimal) (*domain.Booking, error) {
	b, err := uc.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.CustomerID != customerID {
		return nil, domain.ErrNotOwner
	}
	if !b.Status.RequiresPayment() {
		return nil, domain.ErrIllegalTransition
	}

	now := time.Now()
	if b.PaymentDeadline != nil && now.After(*b.PaymentDeadline) {
		return nil, domain.ErrPaymentDeadlineExceeded
	}
	if !amount.Equal(b.Price) {
		return nil, domain.ErrPriceMismatch
	}

	expected := b.Status
	if err := domain.Transition(b, domain.StatusConfirmedPaid, domain.ActorClient, now, 0); err != nil {
		return nil, err
	}

	if err := uc.BookingRepo.UpdateFromStatus(ctx, b, expected); err != nil {
		return nil, err
	}

	uc.audit(ctx, b.ID, expected, b.Status, domain.ActorClient, "")
	uc.publishBookingEvent(b, "")
	if uc.Metrics != nil {
		uc.Metrics.RecordBookingPaid(amount)
	}

	slog.Info("booking paid", "booking_id", b.ID, "customer_id", customerID, "amount", amount)
	return b, nil
}
