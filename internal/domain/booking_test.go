package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(status BookingStatus) *Booking {
	return &Booking{
		ID:          "booking-1",
		CustomerID:  "customer-1",
		TravelerID:  "traveler-1",
		Status:      status,
		Price:       decimal.NewFromInt(100),
		BookingDate: time.Now(),
	}
}

func TestTransition_HappyPath(t *testing.T) {
	now := time.Now()
	b := newTestBooking(StatusPendingConfirmation)

	steps := []BookingStatus{
		StatusConfirmedUnpaid,
		StatusConfirmedPaid,
		StatusParcelHandedToTraveler,
		StatusParcelReceivedByTraveler,
		StatusInTransit,
		StatusParcelDeliveredToReceiver,
		StatusDelivered,
		StatusConfirmedByReceiver,
	}

	for _, target := range steps {
		err := Transition(b, target, ActorTraveler, now, 12*time.Hour)
		require.NoError(t, err, "transition to %s", target)
		assert.Equal(t, target, b.Status)
	}

	assert.True(t, b.Status.IsTerminal())
	require.NotNil(t, b.PayoutEligibleAt)
	assert.Equal(t, now, *b.PayoutEligibleAt)
}

func TestTransition_SetsAndClearsPaymentDeadline(t *testing.T) {
	now := time.Now()
	b := newTestBooking(StatusPendingConfirmation)

	err := Transition(b, StatusConfirmedUnpaid, ActorTraveler, now, 12*time.Hour)
	require.NoError(t, err)
	require.NotNil(t, b.PaymentDeadline)
	assert.Equal(t, now.Add(12*time.Hour), *b.PaymentDeadline)
	require.NotNil(t, b.ConfirmedAt)

	err = Transition(b, StatusConfirmedPaid, ActorClient, now, 12*time.Hour)
	require.NoError(t, err)
	assert.Nil(t, b.PaymentDeadline, "deadline must be cleared on leaving CONFIRMED_UNPAID")
}

func TestTransition_IllegalEdgeLeavesBookingUnchanged(t *testing.T) {
	b := newTestBooking(StatusPendingConfirmation)

	err := Transition(b, StatusDelivered, ActorTraveler, time.Now(), 12*time.Hour)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, StatusPendingConfirmation, b.Status)
	assert.Nil(t, b.PaymentDeadline)
	assert.Nil(t, b.DeliveredAt)
}

func TestTransition_CancelledByClientAllowedSet(t *testing.T) {
	allowed := []BookingStatus{StatusPendingConfirmation, StatusConfirmedUnpaid, StatusConfirmedPaid}
	for _, from := range allowed {
		b := newTestBooking(from)
		err := Transition(b, StatusCancelledByClient, ActorClient, time.Now(), 12*time.Hour)
		require.NoError(t, err, "from %s", from)
		assert.Equal(t, StatusCancelledByClient, b.Status)
		assert.NotNil(t, b.CancelledAt)
	}

	forbidden := []BookingStatus{StatusInTransit, StatusDelivered, StatusConfirmedByReceiver, StatusRefunded}
	for _, from := range forbidden {
		b := newTestBooking(from)
		err := Transition(b, StatusCancelledByClient, ActorClient, time.Now(), 12*time.Hour)
		assert.ErrorIs(t, err, ErrIllegalTransition, "from %s", from)
	}
}

func TestTransition_CancelledByTravelerOnlyFromPending(t *testing.T) {
	b := newTestBooking(StatusPendingConfirmation)
	err := Transition(b, StatusCancelledByTraveler, ActorTraveler, time.Now(), 12*time.Hour)
	require.NoError(t, err)

	b = newTestBooking(StatusConfirmedUnpaid)
	err = Transition(b, StatusCancelledByTraveler, ActorTraveler, time.Now(), 12*time.Hour)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestTransition_PaymentTimeoutIsSystemOnly(t *testing.T) {
	for _, actor := range []Actor{ActorClient, ActorTraveler, ActorAdmin} {
		b := newTestBooking(StatusConfirmedUnpaid)
		err := Transition(b, StatusCancelledPaymentTimeout, actor, time.Now(), 12*time.Hour)
		assert.ErrorIs(t, err, ErrIllegalTransition, "actor %s", actor)
	}

	b := newTestBooking(StatusConfirmedUnpaid)
	err := Transition(b, StatusCancelledPaymentTimeout, ActorSystem, time.Now(), 12*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelledPaymentTimeout, b.Status)
}

func TestTransition_RefundRequiresComputedRefund(t *testing.T) {
	b := newTestBooking(StatusCancelledByClient)
	err := Transition(b, StatusRefunded, ActorAdmin, time.Now(), 12*time.Hour)
	assert.ErrorIs(t, err, ErrIllegalTransition, "refund without a computed amount")

	refund := decimal.NewFromInt(50)
	b.RefundAmount = &refund
	err = Transition(b, StatusRefunded, ActorAdmin, time.Now(), 12*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, StatusRefunded, b.Status)

	// REFUNDED only from a cancelled state
	paid := newTestBooking(StatusConfirmedPaid)
	paid.RefundAmount = &refund
	err = Transition(paid, StatusRefunded, ActorAdmin, time.Now(), 12*time.Hour)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusCancelledByClient.IsCancelled())
	assert.True(t, StatusCancelledPaymentTimeout.IsCancelled())
	assert.False(t, StatusRefunded.IsCancelled())

	assert.True(t, StatusRefunded.IsTerminal())
	assert.True(t, StatusConfirmedByReceiver.IsTerminal())
	assert.False(t, StatusDelivered.IsTerminal())

	assert.True(t, StatusConfirmedUnpaid.RequiresPayment())
	assert.False(t, StatusConfirmedPaid.RequiresPayment())

	assert.True(t, StatusInTransit.IsActive())
	assert.False(t, StatusCancelledByTraveler.IsActive())
}
