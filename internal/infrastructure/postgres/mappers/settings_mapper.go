package mappers

import (
	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/models"
)

func ToDomainSettings(model *models.PlatformSettingsModel) domain.PlatformSettings {
	return domain.PlatformSettings{
		ID:                        model.ID,
		MinPricePerKg:             model.MinPricePerKg,
		MaxPricePerKg:             model.MaxPricePerKg,
		TravelerPercentage:        model.TravelerPercentage,
		PlatformPercentage:        model.PlatformPercentage,
		VATPercentage:             model.VATPercentage,
		PaymentTimeoutHours:       model.PaymentTimeoutHours,
		AutoPayoutDelayHours:      model.AutoPayoutDelayHours,
		CancellationDeadlineHours: model.CancellationDeadlineHours,
		LateCancellationPenalty:   model.LateCancellationPenalty,
		UpdatedAt:                 model.UpdatedAt,
		UpdatedBy:                 model.UpdatedBy,
	}
}

func ToGORMSettings(settings domain.PlatformSettings) *models.PlatformSettingsModel {
	return &models.PlatformSettingsModel{
		ID:                        settings.ID,
		MinPricePerKg:             settings.MinPricePerKg,
		MaxPricePerKg:             settings.MaxPricePerKg,
		TravelerPercentage:        settings.TravelerPercentage,
		PlatformPercentage:        settings.PlatformPercentage,
		VATPercentage:             settings.VATPercentage,
		PaymentTimeoutHours:       settings.PaymentTimeoutHours,
		AutoPayoutDelayHours:      settings.AutoPayoutDelayHours,
		CancellationDeadlineHours: settings.CancellationDeadlineHours,
		LateCancellationPenalty:   settings.LateCancellationPenalty,
		UpdatedAt:                 settings.UpdatedAt,
		UpdatedBy:                 settings.UpdatedBy,
	}
}
