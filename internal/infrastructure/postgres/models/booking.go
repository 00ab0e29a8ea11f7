package models

import (
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/shopspring/decimal"
)

type BookingModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	CustomerID string `gorm:"index;not null"`
	TravelerID string `gorm:"index;not null"`
	ReceiverID string
	FlightID   string `gorm:"index"`

	Status domain.BookingStatus `gorm:"index:idx_status_deadline;index:idx_status_eligible;not null"`

	Price        decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	RefundAmount *decimal.Decimal `gorm:"type:decimal(12,2)"`

	TravelerShare *decimal.Decimal `gorm:"type:decimal(12,2)"`
	PlatformShare *decimal.Decimal `gorm:"type:decimal(12,2)"`
	VATShare      *decimal.Decimal `gorm:"type:decimal(12,2)"`
	PayoutID      string           `gorm:"type:uuid"`

	BookingDate      time.Time
	DepartureAt      time.Time
	ConfirmedAt      *time.Time
	PaymentDeadline  *time.Time `gorm:"index:idx_status_deadline"`
	DeliveredAt      *time.Time
	PayoutEligibleAt *time.Time `gorm:"index:idx_status_eligible"`
	CancelledAt      *time.Time

	CancellationReason string

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
