package booking

import (
	"context"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
)

// The delivery chain. Each operation is gated on the exact predecessor
// state by the transition table; the party driving each step mirrors the
// physical hand-over of the parcel.

func (uc *DefaultBookingUsecase) HandToTraveler(ctx context.Context, bookingID, customerID string) (*domain.Booking, error) {
	return uc.applyTransition(ctx, bookingID, domain.StatusParcelHandedToTraveler, domain.ActorClient, customerID, 0)
}

func (uc *DefaultBookingUsecase) ReceiveByTraveler(ctx context.Context, bookingID, travelerID string) (*domain.Booking, error) {
	return uc.applyTransition(ctx, bookingID, domain.StatusParcelReceivedByTraveler, domain.ActorTraveler, travelerID, 0)
}

func (uc *DefaultBookingUsecase) MarkInTransit(ctx context.Context, bookingID, travelerID string) (*domain.Booking, error) {
	return uc.applyTransition(ctx, bookingID, domain.StatusInTransit, domain.ActorTraveler, travelerID, 0)
}

func (uc *DefaultBookingUsecase) DeliverToReceiver(ctx context.Context, bookingID, travelerID string) (*domain.Booking, error) {
	return uc.applyTransition(ctx, bookingID, domain.StatusParcelDeliveredToReceiver, domain.ActorTraveler, travelerID, 0)
}

func (uc *DefaultBookingUsecase) MarkDelivered(ctx context.Context, bookingID, travelerID string) (*domain.Booking, error) {
	return uc.applyTransition(ctx, bookingID, domain.StatusDelivered, domain.ActorTraveler, travelerID, 0)
}

// ConfirmByReceiver closes the happy path and stamps the moment the payout
// delay starts counting from.
func (uc *DefaultBookingUsecase) ConfirmByReceiver(ctx context.Context, bookingID, receiverID string) (*domain.Booking, error) {
	b, err := uc.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ReceiverID != receiverID {
		return nil, domain.ErrNotOwner
	}

	expected := b.Status
	if err := domain.Transition(b, domain.StatusConfirmedByReceiver, domain.ActorClient, time.Now(), 0); err != nil {
		return nil, err
	}
	if err := uc.BookingRepo.UpdateFromStatus(ctx, b, expected); err != nil {
		return nil, err
	}

	uc.audit(ctx, b.ID, expected, b.Status, domain.ActorClient, "")
	uc.publishBookingEvent(b, "")
	return b, nil
}
