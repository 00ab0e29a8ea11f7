package mappers

import (
	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/models"
)

func ToDomainBooking(model *models.BookingModel) *domain.Booking {
	return &domain.Booking{
		ID:                 model.ID,
		CustomerID:         model.CustomerID,
		TravelerID:         model.TravelerID,
		ReceiverID:         model.ReceiverID,
		FlightID:           model.FlightID,
		Status:             model.Status,
		Price:              model.Price,
		RefundAmount:       model.RefundAmount,
		TravelerShare:      model.TravelerShare,
		PlatformShare:      model.PlatformShare,
		VATShare:           model.VATShare,
		PayoutID:           model.PayoutID,
		BookingDate:        model.BookingDate,
		DepartureAt:        model.DepartureAt,
		ConfirmedAt:        model.ConfirmedAt,
		PaymentDeadline:    model.PaymentDeadline,
		DeliveredAt:        model.DeliveredAt,
		PayoutEligibleAt:   model.PayoutEligibleAt,
		CancelledAt:        model.CancelledAt,
		CancellationReason: model.CancellationReason,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func ToGORMBooking(booking *domain.Booking) *models.BookingModel {
	return &models.BookingModel{
		ID:                 booking.ID,
		CustomerID:         booking.CustomerID,
		TravelerID:         booking.TravelerID,
		ReceiverID:         booking.ReceiverID,
		FlightID:           booking.FlightID,
		Status:             booking.Status,
		Price:              booking.Price,
		RefundAmount:       booking.RefundAmount,
		TravelerShare:      booking.TravelerShare,
		PlatformShare:      booking.PlatformShare,
		VATShare:           booking.VATShare,
		PayoutID:           booking.PayoutID,
		BookingDate:        booking.BookingDate,
		DepartureAt:        booking.DepartureAt,
		ConfirmedAt:        booking.ConfirmedAt,
		PaymentDeadline:    booking.PaymentDeadline,
		DeliveredAt:        booking.DeliveredAt,
		PayoutEligibleAt:   booking.PayoutEligibleAt,
		CancelledAt:        booking.CancelledAt,
		CancellationReason: booking.CancellationReason,
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}
}
