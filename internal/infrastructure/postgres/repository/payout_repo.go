package repository

import (
	"context"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/mappers"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPayoutRepository struct {
	DB *gorm.DB
}

func NewDefaultPayoutRepository(db *gorm.DB) *DefaultPayoutRepository {
	return &DefaultPayoutRepository{DB: db}
}

func (r *DefaultPayoutRepository) Create(ctx context.Context, payout *domain.Payout) error {
	payoutModel := mappers.ToGORMPayout(payout)
	return r.DB.WithContext(ctx).Create(payoutModel).Error
}

func (r *DefaultPayoutRepository) Save(ctx context.Context, payout *domain.Payout) error {
	payoutModel := mappers.ToGORMPayout(payout)
	return r.DB.WithContext(ctx).
		Model(&models.PayoutModel{}).
		Where("id = ?", payout.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(payoutModel).Error
}

func (r *DefaultPayoutRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Payout, error) {
	var payoutModel models.PayoutModel
	if err := r.DB.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		First(&payoutModel).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainPayout(&payoutModel), nil
}

func (r *DefaultPayoutRepository) GetByTravelerID(ctx context.Context, travelerID string) ([]*domain.Payout, error) {
	var payoutModels []models.PayoutModel
	if err := r.DB.WithContext(ctx).
		Where("traveler_id = ?", travelerID).
		Order("created_at DESC").
		Find(&payoutModels).Error; err != nil {
		return nil, err
	}

	payouts := make([]*domain.Payout, len(payoutModels))
	for i, payoutModel := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&payoutModel)
	}
	return payouts, nil
}

func (r *DefaultPayoutRepository) HasActivePayout(ctx context.Context, bookingID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.PayoutModel{}).
		Where("booking_id = ?", bookingID).
		Where("status IN ?", []domain.PayoutStatus{domain.PayoutStatusCompleted, domain.PayoutStatusProcessing}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultPayoutRepository) FindStaleProcessing(ctx context.Context, updatedBefore time.Time) ([]*domain.Payout, error) {
	var payoutModels []models.PayoutModel
	if err := r.DB.WithContext(ctx).
		Where("status = ?", domain.PayoutStatusProcessing).
		Where("updated_at <= ?", updatedBefore).
		Find(&payoutModels).Error; err != nil {
		return nil, err
	}

	payouts := make([]*domain.Payout, len(payoutModels))
	for i, payoutModel := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&payoutModel)
	}
	return payouts, nil
}
