package payout

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
)

// processingStaleAfter is how long a payout may sit in PROCESSING before
// the sweep treats the disbursement outcome as unknown and finalizes it
// FAILED so the booking becomes retryable.
const processingStaleAfter = time.Hour

// ProcessAutomaticPayouts is the auto-payout sweep. Candidates are
// bookings the receiver has confirmed whose payout delay has elapsed and
// which have no COMPLETED or PROCESSING payout yet. One failing candidate
// never aborts the batch. Before picking candidates the sweep recovers
// payouts abandoned in PROCESSING, otherwise a crash mid-disbursement
// would hold the ErrPayoutAlreadyExists guard forever.
func (uc *DefaultPayoutUsecase) ProcessAutomaticPayouts(ctx context.Context, now time.Time) (*domain.SweepReport, error) {
	report := &domain.SweepReport{Job: "auto_payout", StartedAt: now}

	settings, err := uc.SettingsRepo.Get(ctx)
	if err != nil {
		return report, err
	}

	uc.recoverStaleProcessing(ctx, now, report)

	cutoff := now.Add(-settings.AutoPayoutDelay())
	candidates, err := uc.BookingRepo.FindPayoutEligible(ctx, cutoff)
	if err != nil {
		return report, err
	}

	for _, b := range candidates {
		p, err := uc.ProcessPayoutForBooking(ctx, b.ID)
		switch {
		case errors.Is(err, domain.ErrPayoutAlreadyExists):
			report.Add(domain.SweepItemResult{BookingID: b.ID, Action: "skipped_existing"})
		case err != nil:
			slog.Error("automatic payout failed", "booking_id", b.ID, "error", err.Error())
			report.Add(domain.SweepItemResult{BookingID: b.ID, Action: "failed", Error: err.Error()})
		case p.Status == domain.PayoutStatusCompleted:
			report.Add(domain.SweepItemResult{BookingID: b.ID, Action: "paid_out", Success: true})
		default:
			// Disbursement failure: the payout is finalized FAILED but
			// the sweep item still counts as a failure for the report.
			report.Add(domain.SweepItemResult{BookingID: b.ID, Action: "failed", Error: p.ErrorMessage})
		}
	}

	report.Duration = time.Since(now)
	if uc.Metrics != nil {
		uc.Metrics.RecordAutoPayoutSweep(report)
	}

	if report.Processed > 0 {
		slog.Info("auto-payout sweep completed",
			"processed", report.Processed, "paid_out", report.Succeeded,
			"skipped", report.Skipped, "failed", report.Failed)
	} else {
		slog.Debug("no bookings eligible for payout")
	}
	return report, nil
}

func (uc *DefaultPayoutUsecase) recoverStaleProcessing(ctx context.Context, now time.Time, report *domain.SweepReport) {
	stale, err := uc.PayoutRepo.FindStaleProcessing(ctx, now.Add(-processingStaleAfter))
	if err != nil {
		slog.Error("stale payout lookup failed", "error", err.Error())
		return
	}

	for _, p := range stale {
		p.MarkFailed("disbursement outcome unknown")
		if err := uc.PayoutRepo.Save(ctx, p); err != nil {
			slog.Error("failed to finalize stale payout",
				"payout_id", p.ID, "booking_id", p.BookingID, "error", err.Error())
			report.Add(domain.SweepItemResult{BookingID: p.BookingID, Action: "failed", Error: err.Error()})
			continue
		}
		uc.publishPayoutEvent(p)
		slog.Warn("recovered payout stuck in processing",
			"payout_id", p.ID, "booking_id", p.BookingID, "stale_since", p.UpdatedAt)
		report.Add(domain.SweepItemResult{BookingID: p.BookingID, Action: "recovered_stale", Success: true})
	}
}
