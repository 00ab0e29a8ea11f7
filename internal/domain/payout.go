package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayoutStatus string

const (
	PayoutStatusPending    PayoutStatus = "PENDING"
	PayoutStatusProcessing PayoutStatus = "PROCESSING"
	PayoutStatusCompleted  PayoutStatus = "COMPLETED"
	PayoutStatusFailed     PayoutStatus = "FAILED"
	PayoutStatusCancelled  PayoutStatus = "CANCELLED"
)

func (s PayoutStatus) IsFinalized() bool {
	return s == PayoutStatusCompleted || s == PayoutStatusFailed || s == PayoutStatusCancelled
}

// Payout records funds owed/sent to a traveler for one booking. Amounts and
// percentages are snapshotted from the split at creation time and never
// recomputed afterwards.
type Payout struct {
	ID         string
	BookingID  string
	TravelerID string

	TotalAmount    decimal.Decimal
	TravelerAmount decimal.Decimal
	PlatformAmount decimal.Decimal
	VATAmount      decimal.Decimal

	TravelerPercentage decimal.Decimal
	PlatformPercentage decimal.Decimal
	VATPercentage      decimal.Decimal

	Status        PayoutStatus
	TransactionID string
	ErrorMessage  string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

func (p *Payout) MarkCompleted(transactionID string, now time.Time) {
	p.Status = PayoutStatusCompleted
	p.TransactionID = transactionID
	p.ErrorMessage = ""
	completed := now
	p.CompletedAt = &completed
}

func (p *Payout) MarkFailed(errMsg string) {
	p.Status = PayoutStatusFailed
	p.ErrorMessage = errMsg
}

func (p *Payout) MarkCancelled(reason string, now time.Time) {
	p.Status = PayoutStatusCancelled
	p.ErrorMessage = reason
	cancelled := now
	p.CancelledAt = &cancelled
}

// ValidateAmounts checks that the three shares add up to the total.
func (p *Payout) ValidateAmounts() bool {
	sum := p.TravelerAmount.Add(p.PlatformAmount).Add(p.VATAmount)
	return sum.Equal(p.TotalAmount)
}
