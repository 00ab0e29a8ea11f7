package domain

import "time"

// BankInfo is the payout destination of a traveler. The four sensitive
// fields are held as base64(nonce || ciphertext || tag) at rest; each is
// logically unique across all records. Because the ciphertext is
// non-deterministic, uniqueness is enforced by the registry's
// decrypt-and-compare scan, not by a database index.
type BankInfo struct {
	ID      string
	OwnerID string

	IBAN          string
	BankAccount   string
	BIC           string
	AccountHolder string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BankField names one of the encrypted BankInfo fields for uniqueness
// validation and lookups.
type BankField string

const (
	BankFieldIBAN          BankField = "iban"
	BankFieldBankAccount   BankField = "bank_account"
	BankFieldBIC           BankField = "bic"
	BankFieldAccountHolder BankField = "account_holder"
)

func (b *BankInfo) Field(f BankField) string {
	switch f {
	case BankFieldIBAN:
		return b.IBAN
	case BankFieldBankAccount:
		return b.BankAccount
	case BankFieldBIC:
		return b.BIC
	case BankFieldAccountHolder:
		return b.AccountHolder
	}
	return ""
}

func (b *BankInfo) SetField(f BankField, value string) {
	switch f {
	case BankFieldIBAN:
		b.IBAN = value
	case BankFieldBankAccount:
		b.BankAccount = value
	case BankFieldBIC:
		b.BIC = value
	case BankFieldAccountHolder:
		b.AccountHolder = value
	}
}
