package domain

import "errors"

var (
	ErrValidation              = errors.New("validation failed")
	ErrIllegalTransition       = errors.New("illegal booking status transition")
	ErrStaleState              = errors.New("booking state changed concurrently")
	ErrDecryptionFailed        = errors.New("decryption failed")
	ErrDuplicateResource       = errors.New("resource already exists")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBankInfoNotFound        = errors.New("bank info not found")
	ErrPayoutAlreadyExists     = errors.New("active payout already exists for booking")
	ErrPaymentDeadlineExceeded = errors.New("payment deadline exceeded")
	ErrPriceMismatch           = errors.New("payment amount does not match booking price")
	ErrNotOwner                = errors.New("actor does not own this resource")
)
