// Package money holds the pure price-split and refund arithmetic. No I/O,
// no clocks: callers pass settings and hours explicitly.
package money

import (
	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Split divides price into traveler, platform and VAT shares according to
// the configured percentages. Traveler and VAT shares are rounded to two
// decimals and capped at the balance still unallocated; the platform share
// takes the remainder, so the three are non-negative and always add up to
// price exactly. Percentages are assumed to sum to 100, enforced by
// PlatformSettings.Validate before they ever reach this point.
func Split(price decimal.Decimal, settings domain.PlatformSettings) (traveler, platform, vat decimal.Decimal) {
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, decimal.Zero
	}

	traveler = price.Mul(settings.TravelerPercentage).Div(oneHundred).Round(2)
	if traveler.GreaterThan(price) {
		traveler = price
	}
	vat = price.Mul(settings.VATPercentage).Div(oneHundred).Round(2)
	if remaining := price.Sub(traveler); vat.GreaterThan(remaining) {
		vat = remaining
	}
	platform = price.Sub(traveler).Sub(vat)
	return traveler, platform, vat
}

// CancellationRefund computes the amount returned to the client when they
// cancel hoursBeforeDeparture hours ahead of the flight. Cancelling at or
// before the configured deadline refunds the full price; later
// cancellations forfeit the penalty fraction. The result is always within
// [0, price].
func CancellationRefund(price decimal.Decimal, hoursBeforeDeparture int, settings domain.PlatformSettings) decimal.Decimal {
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if hoursBeforeDeparture >= settings.CancellationDeadlineHours {
		return price
	}

	refund := price.Mul(decimal.NewFromInt(1).Sub(settings.LateCancellationPenalty)).Round(2)
	if refund.IsNegative() {
		return decimal.Zero
	}
	if refund.GreaterThan(price) {
		return price
	}
	return refund
}
