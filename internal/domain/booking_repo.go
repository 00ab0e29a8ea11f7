package domain

import (
	"context"
	"time"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, bookingID string) (*Booking, error)
	// Save persists every mutable field of the booking without a status
	// precondition. Lifecycle changes go through UpdateFromStatus.
	Save(ctx context.Context, booking *Booking) error
	// UpdateFromStatus persists the booking only while the stored status
	// still equals expected. Returns ErrStaleState when a concurrent
	// writer moved the booking first.
	UpdateFromStatus(ctx context.Context, booking *Booking, expected BookingStatus) error

	// FindUnpaidPastDeadline returns CONFIRMED_UNPAID bookings whose
	// payment deadline is at or before now.
	FindUnpaidPastDeadline(ctx context.Context, now time.Time) ([]*Booking, error)
	// FindPayoutEligible returns CONFIRMED_BY_RECEIVER bookings whose
	// payout eligibility timestamp is at or before the cutoff.
	FindPayoutEligible(ctx context.Context, eligibleBefore time.Time) ([]*Booking, error)
}

type PayoutRepository interface {
	Create(ctx context.Context, payout *Payout) error
	Save(ctx context.Context, payout *Payout) error
	GetByBookingID(ctx context.Context, bookingID string) (*Payout, error)
	GetByTravelerID(ctx context.Context, travelerID string) ([]*Payout, error)
	// HasActivePayout reports whether a COMPLETED or PROCESSING payout
	// already exists for the booking.
	HasActivePayout(ctx context.Context, bookingID string) (bool, error)
	// FindStaleProcessing returns PROCESSING payouts not touched since
	// updatedBefore. These are rows abandoned mid-disbursement, e.g. by a
	// crash between the PROCESSING write and the finalizing one.
	FindStaleProcessing(ctx context.Context, updatedBefore time.Time) ([]*Payout, error)
}

type BankInfoRepository interface {
	Create(ctx context.Context, info *BankInfo) error
	Save(ctx context.Context, info *BankInfo) error
	GetByID(ctx context.Context, id string) (*BankInfo, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*BankInfo, error)
	FindAll(ctx context.Context) ([]*BankInfo, error)
}

type SettingsRepository interface {
	// Get returns the singleton settings row, bootstrapping defaults when
	// none exists yet.
	Get(ctx context.Context) (PlatformSettings, error)
	Save(ctx context.Context, settings PlatformSettings) (PlatformSettings, error)
}
