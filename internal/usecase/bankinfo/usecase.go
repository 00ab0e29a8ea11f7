// Package bankinfo manages traveler payout destinations. The sensitive
// fields are encrypted at rest with a non-deterministic cipher, so
// uniqueness cannot be enforced by a database index; the registry scans
// all records, decrypting field by field, and compares plaintexts.
package bankinfo

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sendbyop/booking-service/internal/domain"
	"github.com/sendbyop/booking-service/internal/security/vault"
)

type BankInfoUsecase interface {
	SaveBankInfo(ctx context.Context, info *domain.BankInfo) (*domain.BankInfo, error)
	GetDecryptedByOwner(ctx context.Context, ownerID string) (*domain.BankInfo, error)
	FindByIBAN(ctx context.Context, iban string) (*domain.BankInfo, error)
	FindByBIC(ctx context.Context, bic string) (*domain.BankInfo, error)
	ValidateUniqueness(ctx context.Context, field domain.BankField, plaintext, excludeID string) (*ScanReport, error)
}

// Crypter is the subset of the vault the registry needs.
type Crypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(token string) (string, error)
}

type DefaultBankInfoUsecase struct {
	Repo  domain.BankInfoRepository
	Vault Crypter
}

func NewDefaultBankInfoUsecase(repo domain.BankInfoRepository, crypter Crypter) *DefaultBankInfoUsecase {
	return &DefaultBankInfoUsecase{Repo: repo, Vault: crypter}
}

var (
	ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{1,30}$`)
	bicPattern  = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
)

// normalizeCode strips whitespace and uppercases bank identifiers before
// validation and storage.
func normalizeCode(v string) string {
	return strings.ToUpper(strings.Join(strings.Fields(v), ""))
}

func validIBANFormat(iban string) bool {
	return len(iban) >= 15 && ibanPattern.MatchString(iban)
}

func validBICFormat(bic string) bool {
	return bicPattern.MatchString(bic)
}

// SaveBankInfo validates, encrypts and persists a payout destination.
// Values that already look like vault tokens are stored as-is; plaintext
// IBAN and BIC are format-checked and scanned for duplicates first.
func (uc *DefaultBankInfoUsecase) SaveBankInfo(ctx context.Context, info *domain.BankInfo) (*domain.BankInfo, error) {
	if info.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(info.IBAN) == "" {
		return nil, fmt.Errorf("%w: iban is required", domain.ErrValidation)
	}

	for _, field := range []domain.BankField{domain.BankFieldIBAN, domain.BankFieldBIC} {
		value := info.Field(field)
		if strings.TrimSpace(value) == "" || vault.LooksEncrypted(value) {
			continue
		}

		value = normalizeCode(value)
		switch field {
		case domain.BankFieldIBAN:
			if !validIBANFormat(value) {
				return nil, fmt.Errorf("%w: invalid iban format", domain.ErrValidation)
			}
		case domain.BankFieldBIC:
			if !validBICFormat(value) {
				return nil, fmt.Errorf("%w: invalid bic format", domain.ErrValidation)
			}
		}
		info.SetField(field, value)

		if _, err := uc.ValidateUniqueness(ctx, field, value, info.ID); err != nil {
			return nil, err
		}
	}

	for _, field := range []domain.BankField{
		domain.BankFieldIBAN,
		domain.BankFieldBankAccount,
		domain.BankFieldBIC,
		domain.BankFieldAccountHolder,
	} {
		value := info.Field(field)
		if value == "" || vault.LooksEncrypted(value) {
			continue
		}
		encrypted, err := uc.Vault.Encrypt(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt %s: %w", field, err)
		}
		info.SetField(field, encrypted)
	}

	now := time.Now()
	info.UpdatedAt = now
	if info.ID == "" {
		info.ID = uuid.New().String()
		info.CreatedAt = now
		if err := uc.Repo.Create(ctx, info); err != nil {
			return nil, err
		}
		return info, nil
	}

	if err := uc.Repo.Save(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

// GetDecryptedByOwner returns the owner's record with all sensitive fields
// decrypted. This is what the payout flow hands to the disbursement gateway.
func (uc *DefaultBankInfoUsecase) GetDecryptedByOwner(ctx context.Context, ownerID string) (*domain.BankInfo, error) {
	info, err := uc.Repo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return uc.decryptRecord(info)
}

func (uc *DefaultBankInfoUsecase) decryptRecord(info *domain.BankInfo) (*domain.BankInfo, error) {
	out := *info
	for _, field := range []domain.BankField{
		domain.BankFieldIBAN,
		domain.BankFieldBankAccount,
		domain.BankFieldBIC,
		domain.BankFieldAccountHolder,
	} {
		plain, err := uc.Vault.Decrypt(out.Field(field))
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt %s of record %s: %w", field, info.ID, err)
		}
		out.SetField(field, plain)
	}
	return &out, nil
}
