package booking

import (
	"context"
	"testing"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:          "booking-1",
		CustomerID:  "customer-1",
		TravelerID:  "traveler-1",
		ReceiverID:  "receiver-1",
		Status:      domain.StatusPendingConfirmation,
		Price:       decimal.NewFromFloat(100.00),
		DepartureAt: time.Now().Add(96 * time.Hour),
	}
}

func newTestUsecase(repo *MockBookingRepo, pub *MockPublisher) *DefaultBookingUsecase {
	return NewDefaultBookingUsecase(repo, nil, pub, nil)
}

func TestConfirmBooking_SetsPaymentDeadline(t *testing.T) {
	repo := new(MockBookingRepo)
	pub := new(MockPublisher)
	uc := newTestUsecase(repo, pub)

	b := pendingBooking()
	repo.On("GetByID", mock.Anything, "booking-1").Return(b, nil)
	repo.On("UpdateFromStatus", mock.Anything, mock.Anything, domain.StatusPendingConfirmation).Return(nil)
	pub.On("PublishBooking", mock.Anything).Return(nil)

	got, err := uc.ConfirmBooking(context.Background(), "booking-1", "traveler-1")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmedUnpaid, got.Status)
	require.NotNil(t, got.PaymentDeadline)
	require.NotNil(t, got.ConfirmedAt)
	// Default platform payment timeout is 12 hours.
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), *got.PaymentDeadline, time.Minute)
	repo.AssertExpectations(t)
}

func TestConfirmBooking_WrongTraveler(t *testing.T) {
	repo := new(MockBookingRepo)
	uc := newTestUsecase(repo, nil)

	repo.On("GetByID", mock.Anything, "booking-1").Return(pendingBooking(), nil)

	_, err := uc.ConfirmBooking(context.Background(), "booking-1", "someone-else")
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	repo.AssertNotCalled(t, "UpdateFromStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestPayBooking_HappyPath(t *testing.T) {
	repo := new(MockBookingRepo)
	pub := new(MockPublisher)
	uc := newTestUsecase(repo, pub)

	b := pendingBooking()
	b.Status = domain.StatusConfirmedUnpaid
	deadline := time.Now().Add(2 * time.Hour)
	b.PaymentDeadline = &deadline

	repo.On("GetByID", mock.Anything, "booking-1").Return(b, nil)
	repo.On("UpdateFromStatus", mock.Anything, mock.Anything, domain.StatusConfirmedUnpaid).Return(nil)
	pub.On("PublishBooking", mock.Anything).Return(nil)

	got, err := uc.PayBooking(context.Background(), "booking-1", "customer-1", decimal.NewFromFloat(100.00))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmedPaid, got.Status)
	assert.Nil(t, got.PaymentDeadline, "deadline cleared once paid")
	repo.AssertExpectations(t)
}

func TestPayBooking_AfterDeadline(t *testing.T) {
	repo := new(MockBookingRepo)
	uc := newTestUsecase(repo, nil)

	b := pendingBooking()
	b.Status = domain.StatusConfirmedUnpaid
	deadline := time.Now().Add(-time.Minute)
	b.PaymentDeadline = &deadline

	repo.On("GetByID", mock.Anything, "booking-1").Return(b, nil)

	_, err := uc.PayBooking(context.Background(), "booking-1", "customer-1", decimal.NewFromFloat(100.00))
	assert.ErrorIs(t, err, domain.ErrPaymentDeadlineExceeded)
}

func TestPayBooking_WrongAmount(t *testing.T) {
	repo := new(MockBookingRepo)
	uc := newTestUsecase(repo, nil)

	b := pendingBooking()
	b.Status = domain.StatusConfirmedUnpaid
	deadline := time.Now().Add(2 * time.Hour)
	b.PaymentDeadline = &deadline

	repo.On("GetByID", mock.Anything, "booking-1").Return(b, nil)

	_, err := uc.PayBooking(context.Background(), "booking-1", "customer-1", decimal.NewFromFloat(99.99))
	assert.ErrorIs(t, err, domain.ErrPriceMismatch)
}

func TestPayBooking_NotAwaitingPayment(t *testing.T) {
	repo := new(MockBookingRepo)
	uc := newTestUsecase(repo, nil)

	b := pendingBooking()
	b.Status = domain.StatusConfirmedPaid

	repo.On("GetByID", mock.Anything, "booking-1").Return(b, nil)

	_, err := uc.PayBooking(context.Background(), "booking-1", "customer-1", decimal.NewFromFloat(100.00))
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestRejectBooking_OnlyFromPending(t *testing.T) {
	repo := new(MockBookingRepo)
	pub := new(MockPublisher)
	uc := newTestUsecase(repo, pub)

	b := pendingBooking()
	repo.On("GetByID", mock.Anything, "booking-1").Return(b, nil)
	repo.On("UpdateFromStatus", mock.Anything, mock.Anything, domain.StatusPendingConfirmation).Return(nil)
	pub.On("PublishBooking", mock.Anything).Return(nil)

	got, err := uc.RejectBooking(context.Background(), "booking-1", "traveler-1", "cannot carry this parcel")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByTraveler, got.Status)
	assert.Equal(t, "cannot carry this parcel", got.CancellationReason)

	paid := pendingBooking()
	paid.Status = domain.StatusConfirmedPaid
	repo2 := new(MockBookingRepo)
	repo2.On("GetByID", mock.Anything, "booking-2").Return(paid, nil)
	uc2 := newTestUsecase(repo2, nil)

	_, err = uc2.RejectBooking(context.Background(), "booking-2", "traveler-1", "")
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestCancelByClient_FullRefundBeforeDeadline(t *testing.T) {
	repo := new(MockBookingRepo)
	pub := new(MockPublisher)
	uc := newTestUsecase(repo, pub)

	b := pendingBooking()
	b.Status = domain.StatusConfirmedPaid
	b.DepartureAt = time.Now().Add(72 * time.Hour)

	repo.On("GetByID", mock.Anything, "booking-1").Return(b, nil)
	repo.On("UpdateFromStatus", mock.Anything, mock.Anything, domain.StatusConfirmedPaid).Return(nil)
	pub.On("PublishBooking", mock.Anything).Return(nil)

	got, err := uc.CancelByClient(context.Background(), "booking-1", "customer-1", "change of plans")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelledByClient, got.Status)
	require.NotNil(t, got.RefundAmount)
	assert.True(t, got.RefundAmount.Equal(decimal.NewFromFloat(100.00)),
		"expected full refund, got %s", got.RefundAmount)
	require.NotNil(t, got.CancelledAt)
}

func TestCancelByClient_PenaltyCloseToDeparture(t *testing.T) {
	repo := new(MockBookingRepo)
	pub := new(MockPublisher)
	uc := newTestUsecase(repo, pub)

	b := pendingBooking()
	b.Status = domain.StatusConfirmedPaid
	b.DepartureAt = time.Now().Add(3 * time.Hour)

	repo.On("GetByID", mock.Anything, "booking-1").Return(b, nil)
	repo.On("UpdateFromStatus", mock.Anything, mock.Anything, domain.StatusConfirmedPaid).Return(nil)
	pub.On("PublishBooking", mock.Anything).Return(nil)

	got, err := uc.CancelByClient(context.Background(), "booking-1", "customer-1", "")
	require.NoError(t, err)

	// Default penalty is 50% inside the 24h cancellation window.
	require.NotNil(t, got.RefundAmount)
	assert.True(t, got.RefundAmount.Equal(decimal.NewFromFloat(50.00)),
		"expected half refund, got %s", got.RefundAmount)
}

func TestCancelByClient_ForbiddenOnceHandedOver(t *testing.T) {
	repo := new(MockBookingRepo)
	uc := newTestUsecase(repo, nil)

	b := pendingBooking()
	b.Status = domain.StatusParcelHandedToTraveler
	repo.On("GetByID", mock.Anything, "booking-1").Return(b, nil)

	_, err := uc.CancelByClient(context.Background(), "booking-1", "customer-1", "")
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestRefundBooking_RequiresComputedRefund(t *testing.T) {
	repo := new(MockBookingRepo)
	uc := newTestUsecase(repo, nil)

	b := pendingBooking()
	b.Status = domain.StatusCancelledByTraveler
	repo.On("GetByID", mock.Anything, "booking-1").Return(b, nil)

	_, err := uc.RefundBooking(context.Background(), "booking-1")
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestDeliveryChain_WalksHappyPath(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusConfirmedPaid

	repo := new(MockBookingRepo)
	pub := new(MockPublisher)
	uc := newTestUsecase(repo, pub)

	repo.On("GetByID", mock.Anything, "booking-1").Return(b, nil)
	repo.On("UpdateFromStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	pub.On("PublishBooking", mock.Anything).Return(nil)

	steps := []struct {
		call func() (*domain.Booking, error)
		want domain.BookingStatus
	}{
		{func() (*domain.Booking, error) {
			return uc.HandToTraveler(context.Background(), "booking-1", "customer-1")
		}, domain.StatusParcelHandedToTraveler},
		{func() (*domain.Booking, error) {
			return uc.ReceiveByTraveler(context.Background(), "booking-1", "traveler-1")
		}, domain.StatusParcelReceivedByTraveler},
		{func() (*domain.Booking, error) {
			return uc.MarkInTransit(context.Background(), "booking-1", "traveler-1")
		}, domain.StatusInTransit},
		{func() (*domain.Booking, error) {
			return uc.DeliverToReceiver(context.Background(), "booking-1", "traveler-1")
		}, domain.StatusParcelDeliveredToReceiver},
		{func() (*domain.Booking, error) {
			return uc.MarkDelivered(context.Background(), "booking-1", "traveler-1")
		}, domain.StatusDelivered},
		{func() (*domain.Booking, error) {
			return uc.ConfirmByReceiver(context.Background(), "booking-1", "receiver-1")
		}, domain.StatusConfirmedByReceiver},
	}

	for _, step := range steps {
		got, err := step.call()
		require.NoError(t, err)
		assert.Equal(t, step.want, got.Status)
	}

	require.NotNil(t, b.DeliveredAt)
	require.NotNil(t, b.PayoutEligibleAt)
}

func TestConfirmByReceiver_WrongReceiver(t *testing.T) {
	repo := new(MockBookingRepo)
	uc := newTestUsecase(repo, nil)

	b := pendingBooking()
	b.Status = domain.StatusDelivered
	repo.On("GetByID", mock.Anything, "booking-1").Return(b, nil)

	_, err := uc.ConfirmByReceiver(context.Background(), "booking-1", "not-the-receiver")
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}
