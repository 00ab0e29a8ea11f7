package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/mappers"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultBookingRepository struct {
	DB *gorm.DB
}

func NewDefaultBookingRepository(db *gorm.DB) *DefaultBookingRepository {
	return &DefaultBookingRepository{DB: db}
}

func (r *DefaultBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	bookingModel := mappers.ToGORMBooking(booking)
	return r.DB.WithContext(ctx).Create(bookingModel).Error
}

func (r *DefaultBookingRepository) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var bookingModel models.BookingModel
	if err := r.DB.WithContext(ctx).First(&bookingModel, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return mappers.ToDomainBooking(&bookingModel), nil
}

func (r *DefaultBookingRepository) Save(ctx context.Context, booking *domain.Booking) error {
	bookingModel := mappers.ToGORMBooking(booking)
	return r.DB.WithContext(ctx).
		Model(&models.BookingModel{}).
		Where("id = ?", booking.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(bookingModel).Error
}

// UpdateFromStatus writes the booking only while the stored row still sits
// in the expected status. Zero rows affected means a concurrent writer got
// there first and the caller's view is stale.
func (r *DefaultBookingRepository) UpdateFromStatus(ctx context.Context, booking *domain.Booking, expected domain.BookingStatus) error {
	bookingModel := mappers.ToGORMBooking(booking)
	res := r.DB.WithContext(ctx).
		Model(&models.BookingModel{}).
		Where("id = ? AND status = ?", booking.ID, expected).
		Select("*").
		Omit("id", "created_at").
		Updates(bookingModel)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleState
	}
	return nil
}

func (r *DefaultBookingRepository) FindUnpaidPastDeadline(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	var bookingModels []models.BookingModel
	if err := r.DB.WithContext(ctx).
		Where("status = ?", domain.StatusConfirmedUnpaid).
		Where("payment_deadline <= ?", now).
		Find(&bookingModels).Error; err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, len(bookingModels))
	for i, bookingModel := range bookingModels {
		bookings[i] = mappers.ToDomainBooking(&bookingModel)
	}
	return bookings, nil
}

func (r *DefaultBookingRepository) FindPayoutEligible(ctx context.Context, eligibleBefore time.Time) ([]*domain.Booking, error) {
	var bookingModels []models.BookingModel
	if err := r.DB.WithContext(ctx).
		Where("status = ?", domain.StatusConfirmedByReceiver).
		Where("payout_eligible_at <= ?", eligibleBefore).
		Find(&bookingModels).Error; err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, len(bookingModels))
	for i, bookingModel := range bookingModels {
		bookings[i] = mappers.ToDomainBooking(&bookingModel)
	}
	return bookings, nil
}
