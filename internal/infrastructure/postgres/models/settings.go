package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlatformSettingsModel is a singleton row.
type PlatformSettingsModel struct {
	ID uint `gorm:"primaryKey"`

	MinPricePerKg decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	MaxPricePerKg decimal.Decimal `gorm:"type:decimal(8,2);not null"`

	TravelerPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	PlatformPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	VATPercentage      decimal.Decimal `gorm:"type:decimal(5,2);not null"`

	PaymentTimeoutHours       int `gorm:"not null"`
	AutoPayoutDelayHours      int `gorm:"not null"`
	CancellationDeadlineHours int `gorm:"not null"`

	LateCancellationPenalty decimal.Decimal `gorm:"type:decimal(4,3);not null"`

	UpdatedAt time.Time
	UpdatedBy string
}
