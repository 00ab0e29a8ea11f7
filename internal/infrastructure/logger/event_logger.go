// Package logger persists an audit trail of booking lifecycle changes.
// Rows are append-only; failures to write an audit row are reported to the
// caller but are not meant to abort the operation being audited.
package logger

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sendbyop/booking-service/internal/domain"
)

type BookingStatusChangedEvent struct {
	ID         uint `gorm:"primaryKey"`
	BookingID  string
	FromStatus string
	ToStatus   string
	Actor      string
	Reason     string
	Timestamp  time.Time
}

type PGBookingEventLogger struct {
	db *gorm.DB
}

func NewPGBookingEventLogger(db *gorm.DB) *PGBookingEventLogger {
	db.AutoMigrate(&BookingStatusChangedEvent{})
	return &PGBookingEventLogger{db: db}
}

func (l *PGBookingEventLogger) LogStatusChange(ctx context.Context, bookingID string, from, to domain.BookingStatus, actor domain.Actor, reason string) error {
	return l.db.WithContext(ctx).Create(&BookingStatusChangedEvent{
		BookingID:  bookingID,
		FromStatus: string(from),
		ToStatus:   string(to),
		Actor:      string(actor),
		Reason:     reason,
		Timestamp:  time.Now(),
	}).Error
}
