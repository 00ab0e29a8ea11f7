package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
)

// CancelUnpaidPastDeadline is the auto-cancel sweep. It cancels every
// CONFIRMED_UNPAID booking whose payment deadline is at or before now.
// Records are processed one at a time: a booking concurrently paid between
// the query and the write comes back as ErrStaleState and is skipped, any
// other failure is recorded in the report, and the sweep always carries on
// to the remaining candidates.
func (uc *DefaultBookingUsecase) CancelUnpaidPastDeadline(ctx context.Context, now time.Time) (*domain.SweepReport, error) {
	report := &domain.SweepReport{Job: "auto_cancel", StartedAt: now}

	candidates, err := uc.BookingRepo.FindUnpaidPastDeadline(ctx, now)
	if err != nil {
		return report, err
	}

	for _, b := range candidates {
		report.Add(uc.cancelExpired(ctx, b, now))
	}

	report.Duration = time.Since(now)
	if uc.Metrics != nil {
		uc.Metrics.RecordAutoCancelSweep(report)
	}

	if report.Succeeded > 0 {
		slog.Warn("auto-cancelled unpaid bookings past deadline",
			"cancelled", report.Succeeded, "skipped", report.Skipped, "failed", report.Failed)
	} else {
		slog.Debug("no unpaid bookings to cancel")
	}
	return report, nil
}

func (uc *DefaultBookingUsecase) cancelExpired(ctx context.Context, b *domain.Booking, now time.Time) domain.SweepItemResult {
	expected := b.Status
	if err := domain.Transition(b, domain.StatusCancelledPaymentTimeout, domain.ActorSystem, now, 0); err != nil {
		return domain.SweepItemResult{BookingID: b.ID, Action: "failed", Error: err.Error()}
	}

	if err := uc.BookingRepo.UpdateFromStatus(ctx, b, expected); err != nil {
		if errors.Is(err, domain.ErrStaleState) {
			// Paid (or cancelled) concurrently; the next sweep's
			// candidate query will no longer see it.
			slog.Info("skipping stale booking during auto-cancel", "booking_id", b.ID)
			return domain.SweepItemResult{BookingID: b.ID, Action: "skipped_stale"}
		}
		slog.Error("failed to persist auto-cancellation",
			"booking_id", b.ID, "error", err.Error())
		return domain.SweepItemResult{BookingID: b.ID, Action: "failed", Error: err.Error()}
	}

	uc.audit(ctx, b.ID, expected, b.Status, domain.ActorSystem, "payment deadline exceeded")
	uc.publishBookingEvent(b, "payment deadline exceeded")
	if uc.Metrics != nil {
		uc.Metrics.RecordBookingCancelled(string(domain.StatusCancelledPaymentTimeout))
	}
	return domain.SweepItemResult{BookingID: b.ID, Action: "cancelled", Success: true}
}
