package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	StatusPendingConfirmation       BookingStatus = "PENDING_CONFIRMATION"
	StatusConfirmedUnpaid           BookingStatus = "CONFIRMED_UNPAID"
	StatusConfirmedPaid             BookingStatus = "CONFIRMED_PAID"
	StatusParcelHandedToTraveler    BookingStatus = "PARCEL_HANDED_TO_TRAVELER"
	StatusParcelReceivedByTraveler  BookingStatus = "PARCEL_RECEIVED_BY_TRAVELER"
	StatusInTransit                 BookingStatus = "IN_TRANSIT"
	StatusParcelDeliveredToReceiver BookingStatus = "PARCEL_DELIVERED_TO_RECEIVER"
	StatusDelivered                 BookingStatus = "DELIVERED"
	StatusConfirmedByReceiver       BookingStatus = "CONFIRMED_BY_RECEIVER"
	StatusCancelledByClient         BookingStatus = "CANCELLED_BY_CLIENT"
	StatusCancelledByTraveler       BookingStatus = "CANCELLED_BY_TRAVELER"
	StatusCancelledPaymentTimeout   BookingStatus = "CANCELLED_PAYMENT_TIMEOUT"
	StatusRefunded                  BookingStatus = "REFUNDED"
)

// Actor identifies who is driving a transition. Cancellation edges are
// restricted per actor; the payment-timeout edge is system-only.
type Actor string

const (
	ActorClient   Actor = "CLIENT"
	ActorTraveler Actor = "TRAVELER"
	ActorSystem   Actor = "SYSTEM"
	ActorAdmin    Actor = "ADMIN"
)

func (s BookingStatus) IsCancelled() bool {
	return s == StatusCancelledByClient ||
		s == StatusCancelledByTraveler ||
		s == StatusCancelledPaymentTimeout
}

func (s BookingStatus) IsTerminal() bool {
	return s.IsCancelled() || s == StatusRefunded || s == StatusConfirmedByReceiver
}

func (s BookingStatus) CanBeCancelledByClient() bool {
	return s == StatusPendingConfirmation ||
		s == StatusConfirmedUnpaid ||
		s == StatusConfirmedPaid
}

func (s BookingStatus) RequiresPayment() bool {
	return s == StatusConfirmedUnpaid
}

func (s BookingStatus) IsActive() bool {
	return !s.IsTerminal()
}

// happyPath is the linear forward chain of a booking that goes through
// without cancellation.
var happyPath = []BookingStatus{
	StatusPendingConfirmation,
	StatusConfirmedUnpaid,
	StatusConfirmedPaid,
	StatusParcelHandedToTraveler,
	StatusParcelReceivedByTraveler,
	StatusInTransit,
	StatusParcelDeliveredToReceiver,
	StatusDelivered,
	StatusConfirmedByReceiver,
}

// allowedTransitions maps every status to the set of statuses reachable
// from it. Built once at init from the happy path plus the cancellation
// and refund edges.
var allowedTransitions = buildTransitionTable()

func buildTransitionTable() map[BookingStatus]map[BookingStatus]bool {
	table := make(map[BookingStatus]map[BookingStatus]bool)
	add := func(from, to BookingStatus) {
		if table[from] == nil {
			table[from] = make(map[BookingStatus]bool)
		}
		table[from][to] = true
	}

	for i := 0; i < len(happyPath)-1; i++ {
		add(happyPath[i], happyPath[i+1])
	}

	for _, from := range []BookingStatus{StatusPendingConfirmation, StatusConfirmedUnpaid, StatusConfirmedPaid} {
		add(from, StatusCancelledByClient)
	}
	add(StatusPendingConfirmation, StatusCancelledByTraveler)
	add(StatusConfirmedUnpaid, StatusCancelledPaymentTimeout)

	for _, from := range []BookingStatus{StatusCancelledByClient, StatusCancelledByTraveler, StatusCancelledPaymentTimeout} {
		add(from, StatusRefunded)
	}

	return table
}

// CanTransition reports whether the edge from -> to exists in the table.
func CanTransition(from, to BookingStatus) bool {
	return allowedTransitions[from][to]
}

func actorAllowed(target BookingStatus, actor Actor) bool {
	switch target {
	case StatusCancelledPaymentTimeout:
		return actor == ActorSystem
	case StatusCancelledByClient:
		return actor == ActorClient || actor == ActorAdmin
	case StatusCancelledByTraveler:
		return actor == ActorTraveler || actor == ActorAdmin
	default:
		return true
	}
}

type Booking struct {
	ID         string
	CustomerID string
	TravelerID string
	ReceiverID string
	FlightID   string

	Status BookingStatus

	Price        decimal.Decimal
	RefundAmount *decimal.Decimal

	// Populated once a COMPLETED payout exists for the booking.
	TravelerShare *decimal.Decimal
	PlatformShare *decimal.Decimal
	VATShare      *decimal.Decimal
	PayoutID      string

	BookingDate      time.Time
	DepartureAt      time.Time
	ConfirmedAt      *time.Time
	PaymentDeadline  *time.Time
	DeliveredAt      *time.Time
	PayoutEligibleAt *time.Time
	CancelledAt      *time.Time

	CancellationReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transition validates the edge Status -> target for the given actor and,
// on success, applies the new status together with its dependent
// timestamps. paymentTimeout is only consulted when entering
// CONFIRMED_UNPAID. The booking is untouched on error. Persistence and
// side effects (notifications, payout creation) are the caller's job.
func Transition(b *Booking, target BookingStatus, actor Actor, now time.Time, paymentTimeout time.Duration) error {
	if !CanTransition(b.Status, target) {
		return ErrIllegalTransition
	}
	if !actorAllowed(target, actor) {
		return ErrIllegalTransition
	}
	if target == StatusRefunded && b.RefundAmount == nil {
		return ErrIllegalTransition
	}

	// PaymentDeadline is set iff the booking sits in CONFIRMED_UNPAID.
	if b.Status == StatusConfirmedUnpaid {
		b.PaymentDeadline = nil
	}

	switch target {
	case StatusConfirmedUnpaid:
		deadline := now.Add(paymentTimeout)
		b.PaymentDeadline = &deadline
		confirmed := now
		b.ConfirmedAt = &confirmed
	case StatusDelivered:
		delivered := now
		b.DeliveredAt = &delivered
	case StatusConfirmedByReceiver:
		eligible := now
		b.PayoutEligibleAt = &eligible
	case StatusCancelledByClient, StatusCancelledByTraveler, StatusCancelledPaymentTimeout:
		cancelled := now
		b.CancelledAt = &cancelled
	}

	b.Status = target
	return nil
}
