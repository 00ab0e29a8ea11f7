package models

import "time"

// BankInfoModel holds the encrypted payout destination fields. Columns are
// plain text because the values are vault tokens; no unique indexes on the
// sensitive fields, uniqueness is enforced in the registry.
type BankInfoModel struct {
	ID      string `gorm:"primaryKey;type:uuid"`
	OwnerID string `gorm:"uniqueIndex;not null"`

	IBAN          string `gorm:"column:iban;not null"`
	BankAccount   string
	BIC           string `gorm:"column:bic"`
	AccountHolder string

	CreatedAt time.Time
	UpdatedAt time.Time
}
