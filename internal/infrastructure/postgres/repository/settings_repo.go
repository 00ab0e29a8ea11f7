package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/mappers"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSettingsRepository struct {
	DB *gorm.DB
}

func NewDefaultSettingsRepository(db *gorm.DB) *DefaultSettingsRepository {
	return &DefaultSettingsRepository{DB: db}
}

// Get returns the singleton settings row. On first access the defaults are
// written so every later reader sees the same row.
func (r *DefaultSettingsRepository) Get(ctx context.Context) (domain.PlatformSettings, error) {
	var settingsModel models.PlatformSettingsModel
	err := r.DB.WithContext(ctx).Order("id").First(&settingsModel).Error
	if err == nil {
		return mappers.ToDomainSettings(&settingsModel), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.PlatformSettings{}, err
	}

	defaults := domain.DefaultPlatformSettings()
	defaults.UpdatedAt = time.Now()
	defaults.UpdatedBy = "system"

	defaultsModel := mappers.ToGORMSettings(defaults)
	if err := r.DB.WithContext(ctx).Create(defaultsModel).Error; err != nil {
		return domain.PlatformSettings{}, err
	}

	slog.Info("platform settings bootstrapped with defaults")
	return mappers.ToDomainSettings(defaultsModel), nil
}

func (r *DefaultSettingsRepository) Save(ctx context.Context, settings domain.PlatformSettings) (domain.PlatformSettings, error) {
	settingsModel := mappers.ToGORMSettings(settings)
	if err := r.DB.WithContext(ctx).Save(settingsModel).Error; err != nil {
		return domain.PlatformSettings{}, err
	}
	return mappers.ToDomainSettings(settingsModel), nil
}
