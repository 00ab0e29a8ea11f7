package money

import (
	"testing"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsWithPercentages(traveler, platform, vat int64) domain.PlatformSettings {
	s := domain.DefaultPlatformSettings()
	s.TravelerPercentage = decimal.NewFromInt(traveler)
	s.PlatformPercentage = decimal.NewFromInt(platform)
	s.VATPercentage = decimal.NewFromInt(vat)
	return s
}

func TestSplit_DefaultPercentages(t *testing.T) {
	traveler, platform, vat := Split(decimal.NewFromFloat(100.00), settingsWithPercentages(70, 25, 5))

	assert.True(t, traveler.Equal(decimal.NewFromFloat(70.00)), "traveler share: %s", traveler)
	assert.True(t, platform.Equal(decimal.NewFromFloat(25.00)), "platform share: %s", platform)
	assert.True(t, vat.Equal(decimal.NewFromFloat(5.00)), "vat share: %s", vat)
}

func TestSplit_SharesAlwaysSumToPrice(t *testing.T) {
	percentages := []struct{ traveler, platform, vat int64 }{
		{70, 25, 5},
		{33, 33, 34},
		{100, 0, 0},
		{0, 0, 100},
		{1, 98, 1},
		{50, 0, 50},
		{49, 2, 49},
	}
	prices := []decimal.Decimal{
		decimal.NewFromFloat(0.01),
		decimal.NewFromFloat(9.99),
		decimal.NewFromFloat(100.00),
		decimal.NewFromFloat(123.45),
		decimal.NewFromFloat(99999.99),
	}

	for _, pct := range percentages {
		settings := settingsWithPercentages(pct.traveler, pct.platform, pct.vat)
		for _, price := range prices {
			traveler, platform, vat := Split(price, settings)

			assert.False(t, traveler.IsNegative(), "traveler %d/%d/%d price %s", pct.traveler, pct.platform, pct.vat, price)
			assert.False(t, platform.IsNegative(), "platform %d/%d/%d price %s", pct.traveler, pct.platform, pct.vat, price)
			assert.False(t, vat.IsNegative(), "vat %d/%d/%d price %s", pct.traveler, pct.platform, pct.vat, price)

			sum := traveler.Add(platform).Add(vat)
			assert.True(t, sum.Equal(price), "split of %s at %d/%d/%d sums to %s", price, pct.traveler, pct.platform, pct.vat, sum)
		}
	}
}

func TestSplit_ZeroAndNegativePrice(t *testing.T) {
	settings := settingsWithPercentages(70, 25, 5)

	traveler, platform, vat := Split(decimal.Zero, settings)
	assert.True(t, traveler.IsZero())
	assert.True(t, platform.IsZero())
	assert.True(t, vat.IsZero())

	traveler, platform, vat = Split(decimal.NewFromInt(-10), settings)
	assert.True(t, traveler.IsZero())
	assert.True(t, platform.IsZero())
	assert.True(t, vat.IsZero())
}

func TestCancellationRefund_Scenarios(t *testing.T) {
	settings := domain.DefaultPlatformSettings()
	settings.CancellationDeadlineHours = 24
	settings.LateCancellationPenalty = decimal.NewFromFloat(0.50)
	price := decimal.NewFromFloat(100.00)

	refund := CancellationRefund(price, 2, settings)
	assert.True(t, refund.Equal(decimal.NewFromFloat(50.00)), "late cancellation refund: %s", refund)

	refund = CancellationRefund(price, 30, settings)
	assert.True(t, refund.Equal(price), "early cancellation refund: %s", refund)

	refund = CancellationRefund(price, 24, settings)
	assert.True(t, refund.Equal(price), "cancellation exactly at deadline refund: %s", refund)
}

func TestCancellationRefund_MonotonicInHours(t *testing.T) {
	settings := domain.DefaultPlatformSettings()
	price := decimal.NewFromFloat(250.00)

	prev := decimal.NewFromInt(-1)
	for hours := 0; hours <= 72; hours++ {
		refund := CancellationRefund(price, hours, settings)
		require.True(t, refund.GreaterThanOrEqual(prev), "refund decreased at %d hours", hours)
		require.True(t, refund.GreaterThanOrEqual(decimal.Zero))
		require.True(t, refund.LessThanOrEqual(price))
		prev = refund
	}
}

func TestCancellationRefund_FullPenaltyFloorsAtZero(t *testing.T) {
	settings := domain.DefaultPlatformSettings()
	settings.LateCancellationPenalty = decimal.NewFromInt(1)

	refund := CancellationRefund(decimal.NewFromFloat(80.00), 1, settings)
	assert.True(t, refund.IsZero(), "refund with 100%% penalty: %s", refund)
}
