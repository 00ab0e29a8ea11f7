package bankinfo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sendbyop/booking-service/internal/domain"
)

// ScanReport describes one linear uniqueness scan. Records whose field
// could not be decrypted are listed in Undecryptable rather than silently
// dropped; a skip never hides a duplicate found later in the scan.
type ScanReport struct {
	Field         domain.BankField `json:"field"`
	Scanned       int              `json:"scanned"`
	Undecryptable []string         `json:"undecryptable,omitempty"`
}

// ValidateUniqueness checks that no other record holds the same plaintext
// in the given field. excludeID exempts the record being updated. A blank
// plaintext is vacuously unique.
func (uc *DefaultBankInfoUsecase) ValidateUniqueness(ctx context.Context, field domain.BankField, plaintext, excludeID string) (*ScanReport, error) {
	report := &ScanReport{Field: field}
	if strings.TrimSpace(plaintext) == "" {
		return report, nil
	}

	records, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return report, err
	}

	for _, record := range records {
		if excludeID != "" && record.ID == excludeID {
			continue
		}
		report.Scanned++

		existing, err := uc.Vault.Decrypt(record.Field(field))
		if err != nil {
			slog.Warn("skipping undecryptable bank record during uniqueness scan",
				"record_id", record.ID, "field", field, "error", err.Error())
			report.Undecryptable = append(report.Undecryptable, record.ID)
			continue
		}

		if existing != "" && existing == plaintext {
			return report, fmt.Errorf("%w: %s is already registered", domain.ErrDuplicateResource, field)
		}
	}

	return report, nil
}

// FindByIBAN locates the record holding the given plaintext IBAN.
func (uc *DefaultBankInfoUsecase) FindByIBAN(ctx context.Context, iban string) (*domain.BankInfo, error) {
	return uc.findByField(ctx, domain.BankFieldIBAN, normalizeCode(iban))
}

// FindByBIC locates the record holding the given plaintext BIC.
func (uc *DefaultBankInfoUsecase) FindByBIC(ctx context.Context, bic string) (*domain.BankInfo, error) {
	return uc.findByField(ctx, domain.BankFieldBIC, normalizeCode(bic))
}

func (uc *DefaultBankInfoUsecase) findByField(ctx context.Context, field domain.BankField, plaintext string) (*domain.BankInfo, error) {
	if plaintext == "" {
		return nil, domain.ErrBankInfoNotFound
	}

	records, err := uc.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		existing, err := uc.Vault.Decrypt(record.Field(field))
		if err != nil {
			slog.Warn("skipping undecryptable bank record during lookup",
				"record_id", record.ID, "field", field, "error", err.Error())
			continue
		}
		if existing != "" && existing == plaintext {
			return uc.decryptRecord(record)
		}
	}

	return nil, domain.ErrBankInfoNotFound
}
