// Package settings exposes the platform configuration singleton to the
// admin surface. Reads bootstrap defaults on first use; updates are
// validated before anything touches the database.
package settings

import (
	"context"
	"log/slog"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
)

type SettingsUsecase interface {
	GetSettings(ctx context.Context) (domain.PlatformSettings, error)
	UpdateSettings(ctx context.Context, updated domain.PlatformSettings, updatedBy string) (domain.PlatformSettings, error)
}

type DefaultSettingsUsecase struct {
	Repo domain.SettingsRepository
}

func NewDefaultSettingsUsecase(repo domain.SettingsRepository) *DefaultSettingsUsecase {
	return &DefaultSettingsUsecase{Repo: repo}
}

func (uc *DefaultSettingsUsecase) GetSettings(ctx context.Context) (domain.PlatformSettings, error) {
	return uc.Repo.Get(ctx)
}

// UpdateSettings replaces the singleton row after validating every
// invariant. The previous row's identity is kept so the singleton never
// forks.
func (uc *DefaultSettingsUsecase) UpdateSettings(ctx context.Context, updated domain.PlatformSettings, updatedBy string) (domain.PlatformSettings, error) {
	if err := updated.Validate(); err != nil {
		return domain.PlatformSettings{}, err
	}

	current, err := uc.Repo.Get(ctx)
	if err != nil {
		return domain.PlatformSettings{}, err
	}

	updated.ID = current.ID
	updated.UpdatedAt = time.Now()
	updated.UpdatedBy = updatedBy

	saved, err := uc.Repo.Save(ctx, updated)
	if err != nil {
		return domain.PlatformSettings{}, err
	}

	slog.Info("platform settings updated",
		"updated_by", updatedBy,
		"traveler_pct", saved.TravelerPercentage.String(),
		"platform_pct", saved.PlatformPercentage.String(),
		"vat_pct", saved.VATPercentage.String(),
		"payment_timeout_hours", saved.PaymentTimeoutHours)
	return saved, nil
}
