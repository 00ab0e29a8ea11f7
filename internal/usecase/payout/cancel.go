package payout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
)

// CancelPayout stops a payout that has not reached a terminal state yet.
// Admin operation: a payout the gateway already completed or finalized
// cannot be cancelled, money has moved.
func (uc *DefaultPayoutUsecase) CancelPayout(ctx context.Context, bookingID, reason string) (*domain.Payout, error) {
	p, err := uc.PayoutRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if p.Status != domain.PayoutStatusPending && p.Status != domain.PayoutStatusProcessing {
		return nil, fmt.Errorf("%w: payout %s is %s", domain.ErrIllegalTransition, p.ID, p.Status)
	}

	p.MarkCancelled(reason, time.Now())
	if err := uc.PayoutRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	uc.publishPayoutEvent(p)
	slog.Info("payout cancelled",
		"payout_id", p.ID, "booking_id", p.BookingID, "reason", reason)
	return p, nil
}
