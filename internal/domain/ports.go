package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// BookingEvent is the payload published to the notification pipeline when
// a booking changes state. Delivery is fire-and-forget from the engine's
// perspective.
type BookingEvent struct {
	BookingID  string          `json:"booking_id"`
	CustomerID string          `json:"customer_id"`
	TravelerID string          `json:"traveler_id"`
	Status     BookingStatus   `json:"status"`
	Price      decimal.Decimal `json:"price"`
	Reason     string          `json:"reason,omitempty"`
}

type PayoutEvent struct {
	PayoutID      string          `json:"payout_id"`
	BookingID     string          `json:"booking_id"`
	TravelerID    string          `json:"traveler_id"`
	Status        PayoutStatus    `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Error         string          `json:"error,omitempty"`
}

type EventPublisher interface {
	PublishBooking(event BookingEvent) error
	PublishPayout(event PayoutEvent) error
}

// DisbursementGateway transfers a traveler's share to their bank account.
type DisbursementGateway interface {
	Disburse(ctx context.Context, req DisbursementRequest) (transactionID string, err error)
}

type DisbursementRequest struct {
	PayoutID       string          `json:"payout_id"`
	TravelerID     string          `json:"traveler_id"`
	Amount         decimal.Decimal `json:"amount"`
	IBAN           string          `json:"iban"`
	BIC            string          `json:"bic"`
	AccountHolder  string          `json:"account_holder"`
	IdempotencyKey string          `json:"idempotency_key"`
}
