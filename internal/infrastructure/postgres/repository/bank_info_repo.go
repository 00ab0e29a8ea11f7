package repository

import (
	"context"
	"errors"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/mappers"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultBankInfoRepository struct {
	DB *gorm.DB
}

func NewDefaultBankInfoRepository(db *gorm.DB) *DefaultBankInfoRepository {
	return &DefaultBankInfoRepository{DB: db}
}

func (r *DefaultBankInfoRepository) Create(ctx context.Context, info *domain.BankInfo) error {
	infoModel := mappers.ToGORMBankInfo(info)
	return r.DB.WithContext(ctx).Create(infoModel).Error
}

func (r *DefaultBankInfoRepository) Save(ctx context.Context, info *domain.BankInfo) error {
	infoModel := mappers.ToGORMBankInfo(info)
	return r.DB.WithContext(ctx).
		Model(&models.BankInfoModel{}).
		Where("id = ?", info.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(infoModel).Error
}

func (r *DefaultBankInfoRepository) GetByID(ctx context.Context, id string) (*domain.BankInfo, error) {
	var infoModel models.BankInfoModel
	if err := r.DB.WithContext(ctx).First(&infoModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBankInfoNotFound
		}
		return nil, err
	}
	return mappers.ToDomainBankInfo(&infoModel), nil
}

func (r *DefaultBankInfoRepository) GetByOwnerID(ctx context.Context, ownerID string) (*domain.BankInfo, error) {
	var infoModel models.BankInfoModel
	if err := r.DB.WithContext(ctx).First(&infoModel, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBankInfoNotFound
		}
		return nil, err
	}
	return mappers.ToDomainBankInfo(&infoModel), nil
}

func (r *DefaultBankInfoRepository) FindAll(ctx context.Context) ([]*domain.BankInfo, error) {
	var infoModels []models.BankInfoModel
	if err := r.DB.WithContext(ctx).Find(&infoModels).Error; err != nil {
		return nil, err
	}

	infos := make([]*domain.BankInfo, len(infoModels))
	for i, infoModel := range infoModels {
		infos[i] = mappers.ToDomainBankInfo(&infoModel)
	}
	return infos, nil
}
