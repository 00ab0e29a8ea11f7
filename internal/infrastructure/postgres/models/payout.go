package models

import (
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/shopspring/decimal"
)

type PayoutModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	BookingID  string `gorm:"type:uuid;index;not null"`
	TravelerID string `gorm:"index;not null"`

	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TravelerAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PlatformAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	VATAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	TravelerPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	PlatformPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	VATPercentage      decimal.Decimal `gorm:"type:decimal(5,2);not null"`

	Status        domain.PayoutStatus `gorm:"index;not null"`
	TransactionID string
	ErrorMessage  string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}
