package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PlatformSettings is the singleton platform configuration. It is loaded
// once at job start and passed by value into the money policy and the
// sweeps, never mutated in place.
type PlatformSettings struct {
	ID uint

	MinPricePerKg decimal.Decimal
	MaxPricePerKg decimal.Decimal

	TravelerPercentage decimal.Decimal
	PlatformPercentage decimal.Decimal
	VATPercentage      decimal.Decimal

	PaymentTimeoutHours       int
	AutoPayoutDelayHours      int
	CancellationDeadlineHours int

	// Fraction in [0,1] withheld from the refund on a late cancellation.
	LateCancellationPenalty decimal.Decimal

	UpdatedAt time.Time
	UpdatedBy string
}

// DefaultPlatformSettings are applied when no settings row exists yet.
func DefaultPlatformSettings() PlatformSettings {
	return PlatformSettings{
		MinPricePerKg:             decimal.NewFromFloat(5.00),
		MaxPricePerKg:             decimal.NewFromFloat(50.00),
		TravelerPercentage:        decimal.NewFromInt(70),
		PlatformPercentage:        decimal.NewFromInt(25),
		VATPercentage:             decimal.NewFromInt(5),
		PaymentTimeoutHours:       12,
		AutoPayoutDelayHours:      24,
		CancellationDeadlineHours: 24,
		LateCancellationPenalty:   decimal.NewFromFloat(0.50),
	}
}

func (s PlatformSettings) PaymentTimeout() time.Duration {
	return time.Duration(s.PaymentTimeoutHours) * time.Hour
}

func (s PlatformSettings) AutoPayoutDelay() time.Duration {
	return time.Duration(s.AutoPayoutDelayHours) * time.Hour
}

// Validate enforces every settings invariant. Called on the admin update
// path before anything is persisted.
func (s PlatformSettings) Validate() error {
	if s.MinPricePerKg.LessThanOrEqual(decimal.Zero) || s.MaxPricePerKg.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: price per kg must be positive", ErrValidation)
	}
	if s.MinPricePerKg.GreaterThanOrEqual(s.MaxPricePerKg) {
		return fmt.Errorf("%w: min price per kg must be below max price per kg", ErrValidation)
	}

	for _, pct := range []decimal.Decimal{s.TravelerPercentage, s.PlatformPercentage, s.VATPercentage} {
		if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("%w: percentages must be within [0,100]", ErrValidation)
		}
	}
	sum := s.TravelerPercentage.Add(s.PlatformPercentage).Add(s.VATPercentage)
	if !sum.Equal(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: percentages must sum to 100, got %s", ErrValidation, sum)
	}

	if s.PaymentTimeoutHours < 2 || s.PaymentTimeoutHours > 24 {
		return fmt.Errorf("%w: payment timeout must be between 2 and 24 hours", ErrValidation)
	}
	if s.AutoPayoutDelayHours < 12 || s.AutoPayoutDelayHours > 72 {
		return fmt.Errorf("%w: auto payout delay must be between 12 and 72 hours", ErrValidation)
	}
	if s.CancellationDeadlineHours < 12 || s.CancellationDeadlineHours > 72 {
		return fmt.Errorf("%w: cancellation deadline must be between 12 and 72 hours", ErrValidation)
	}

	if s.LateCancellationPenalty.IsNegative() || s.LateCancellationPenalty.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: late cancellation penalty must be within [0,1]", ErrValidation)
	}

	return nil
}
