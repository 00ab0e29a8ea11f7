package mappers

import (
	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/models"
)

func ToDomainPayout(model *models.PayoutModel) *domain.Payout {
	return &domain.Payout{
		ID:                 model.ID,
		BookingID:          model.BookingID,
		TravelerID:         model.TravelerID,
		TotalAmount:        model.TotalAmount,
		TravelerAmount:     model.TravelerAmount,
		PlatformAmount:     model.PlatformAmount,
		VATAmount:          model.VATAmount,
		TravelerPercentage: model.TravelerPercentage,
		PlatformPercentage: model.PlatformPercentage,
		VATPercentage:      model.VATPercentage,
		Status:             model.Status,
		TransactionID:      model.TransactionID,
		ErrorMessage:       model.ErrorMessage,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
		CompletedAt:        model.CompletedAt,
		CancelledAt:        model.CancelledAt,
	}
}

func ToGORMPayout(payout *domain.Payout) *models.PayoutModel {
	return &models.PayoutModel{
		ID:                 payout.ID,
		BookingID:          payout.BookingID,
		TravelerID:         payout.TravelerID,
		TotalAmount:        payout.TotalAmount,
		TravelerAmount:     payout.TravelerAmount,
		PlatformAmount:     payout.PlatformAmount,
		VATAmount:          payout.VATAmount,
		TravelerPercentage: payout.TravelerPercentage,
		PlatformPercentage: payout.PlatformPercentage,
		VATPercentage:      payout.VATPercentage,
		Status:             payout.Status,
		TransactionID:      payout.TransactionID,
		ErrorMessage:       payout.ErrorMessage,
		CreatedAt:          payout.CreatedAt,
		UpdatedAt:          payout.UpdatedAt,
		CompletedAt:        payout.CompletedAt,
		CancelledAt:        payout.CancelledAt,
	}
}
