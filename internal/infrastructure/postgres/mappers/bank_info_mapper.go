package mappers

import (
	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/models"
)

func ToDomainBankInfo(model *models.BankInfoModel) *domain.BankInfo {
	return &domain.BankInfo{
		ID:            model.ID,
		OwnerID:       model.OwnerID,
		IBAN:          model.IBAN,
		BankAccount:   model.BankAccount,
		BIC:           model.BIC,
		AccountHolder: model.AccountHolder,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMBankInfo(info *domain.BankInfo) *models.BankInfoModel {
	return &models.BankInfoModel{
		ID:            info.ID,
		OwnerID:       info.OwnerID,
		IBAN:          info.IBAN,
		BankAccount:   info.BankAccount,
		BIC:           info.BIC,
		AccountHolder: info.AccountHolder,
		CreatedAt:     info.CreatedAt,
		UpdatedAt:     info.UpdatedAt,
	}
}
