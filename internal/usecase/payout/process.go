package payout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/sendbyop/booking-service/internal/money"
)

// ProcessPayoutForBooking computes the split for one delivery-confirmed
// booking, records a payout and attempts the transfer through the
// disbursement gateway. The payout always ends COMPLETED or FAILED, never
// dangling in PENDING. Booking status is left alone; only the share fields
// and the payout reference are written back on success.
func (uc *DefaultPayoutUsecase) ProcessPayoutForBooking(ctx context.Context, bookingID string) (*domain.Payout, error) {
	b, err := uc.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.PayoutRepo.HasActivePayout(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPayoutAlreadyExists
	}

	settings, err := uc.SettingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	travelerShare, platformShare, vatShare := money.Split(b.Price, settings)

	p := &domain.Payout{
		ID:                 uuid.New().String(),
		BookingID:          b.ID,
		TravelerID:         b.TravelerID,
		TotalAmount:        b.Price,
		TravelerAmount:     travelerShare,
		PlatformAmount:     platformShare,
		VATAmount:          vatShare,
		TravelerPercentage: settings.TravelerPercentage,
		PlatformPercentage: settings.PlatformPercentage,
		VATPercentage:      settings.VATPercentage,
		Status:             domain.PayoutStatusPending,
		CreatedAt:          now,
	}
	if err := uc.PayoutRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	p.Status = domain.PayoutStatusProcessing
	if err := uc.PayoutRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	txID, disburseErr := uc.disburse(ctx, p)
	if disburseErr != nil {
		p.MarkFailed(disburseErr.Error())
		if err := uc.PayoutRepo.Save(ctx, p); err != nil {
			return nil, err
		}
		uc.publishPayoutEvent(p)
		if uc.Metrics != nil {
			uc.Metrics.RecordPayoutProcessed(string(p.Status), p.TravelerAmount)
		}
		slog.Error("payout disbursement failed",
			"payout_id", p.ID, "booking_id", b.ID, "error", disburseErr.Error())
		return p, nil
	}

	p.MarkCompleted(txID, time.Now())
	if err := uc.PayoutRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	// Completed payout: record the applied split on the booking itself.
	b.TravelerShare = &travelerShare
	b.PlatformShare = &platformShare
	b.VATShare = &vatShare
	b.PayoutID = p.ID
	if err := uc.BookingRepo.Save(ctx, b); err != nil {
		slog.Error("failed to record payout reference on booking",
			"payout_id", p.ID, "booking_id", b.ID, "error", err.Error())
	}

	uc.publishPayoutEvent(p)
	if uc.Metrics != nil {
		uc.Metrics.RecordPayoutProcessed(string(p.Status), p.TravelerAmount)
	}

	slog.Info("payout completed",
		"payout_id", p.ID, "booking_id", b.ID, "traveler_id", b.TravelerID,
		"amount", p.TravelerAmount, "transaction_id", txID)
	return p, nil
}

func (uc *DefaultPayoutUsecase) disburse(ctx context.Context, p *domain.Payout) (string, error) {
	destination, err := uc.BankDetails.GetDecryptedByOwner(ctx, p.TravelerID)
	if err != nil {
		return "", fmt.Errorf("no payout destination for traveler %s: %w", p.TravelerID, err)
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return "", err
	}

	return uc.Gateway.Disburse(ctx, domain.DisbursementRequest{
		PayoutID:       p.ID,
		TravelerID:     p.TravelerID,
		Amount:         p.TravelerAmount,
		IBAN:           destination.IBAN,
		BIC:            destination.BIC,
		AccountHolder:  destination.AccountHolder,
		IdempotencyKey: idGenerator(),
	})
}

func (uc *DefaultPayoutUsecase) publishPayoutEvent(p *domain.Payout) {
	if uc.Publisher == nil {
		return
	}
	event := domain.PayoutEvent{
		PayoutID:      p.ID,
		BookingID:     p.BookingID,
		TravelerID:    p.TravelerID,
		Status:        p.Status,
		Amount:        p.TravelerAmount,
		TransactionID: p.TransactionID,
		Error:         p.ErrorMessage,
	}
	if err := uc.Publisher.PublishPayout(event); err != nil {
		slog.Error("failed to publish payout event",
			"payout_id", p.ID, "status", p.Status, "error", err.Error())
	}
}
