// Package scheduler drives the periodic sweeps. Each job is a goroutine
// around a time.Ticker that calls into the usecases with the tick time;
// all scheduling state lives here, the jobs themselves are stateless.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/sendbyop/booking-service/internal/usecase/booking"
	"github.com/sendbyop/booking-service/internal/usecase/payout"
)

type BackgroundJobs struct {
	BookingUsecase booking.BookingUsecase
	PayoutUsecase  payout.PayoutUsecase

	DeadlineSweepInterval time.Duration
	PayoutSweepInterval   time.Duration
}

func NewBackgroundJobs(
	bookingUC booking.BookingUsecase,
	payoutUC payout.PayoutUsecase,
	deadlineSweepInterval, payoutSweepInterval time.Duration) *BackgroundJobs {

	return &BackgroundJobs{
		BookingUsecase:        bookingUC,
		PayoutUsecase:         payoutUC,
		DeadlineSweepInterval: deadlineSweepInterval,
		PayoutSweepInterval:   payoutSweepInterval,
	}
}

func (bj *BackgroundJobs) StartAll(ctx context.Context) {
	go bj.startDeadlineEnforcer(ctx)
	go bj.startPayoutOrchestrator(ctx)
}

func (bj *BackgroundJobs) startDeadlineEnforcer(ctx context.Context) {
	ticker := time.NewTicker(bj.DeadlineSweepInterval)
	defer ticker.Stop()

	slog.Info("deadline enforcer started", "interval", bj.DeadlineSweepInterval.String())
	for {
		select {
		case <-ctx.Done():
			slog.Info("deadline enforcer stopped")
			return
		case tick := <-ticker.C:
			if _, err := bj.BookingUsecase.CancelUnpaidPastDeadline(ctx, tick); err != nil {
				slog.Error("deadline sweep failed", "error", err.Error())
			}
		}
	}
}

func (bj *BackgroundJobs) startPayoutOrchestrator(ctx context.Context) {
	ticker := time.NewTicker(bj.PayoutSweepInterval)
	defer ticker.Stop()

	slog.Info("payout orchestrator started", "interval", bj.PayoutSweepInterval.String())
	for {
		select {
		case <-ctx.Done():
			slog.Info("payout orchestrator stopped")
			return
		case tick := <-ticker.C:
			if _, err := bj.PayoutUsecase.ProcessAutomaticPayouts(ctx, tick); err != nil {
				slog.Error("payout sweep failed", "error", err.Error())
			}
		}
	}
}
