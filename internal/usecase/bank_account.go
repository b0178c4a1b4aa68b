package usecase

import (
	"context"
	"fmt"

	"streetimport/internal/domain"
)

// saveBankAccount makes sure the mandate holder owns a bank account with the
// mandate's IBAN. Failures are logged; the mandate stays.
func (m *MandateExtractor) saveBankAccount(ctx context.Context, recordID string, spec *domain.MandateSpec) {
	exists, err := m.banking.HasBankAccount(ctx, spec.ContactID, spec.IBAN)
	if err != nil {
		m.result.Error(ctx, recordID, "Bank Account Error", fmt.Sprintf("Could not check bank accounts of contact %d: %v", spec.ContactID, err))
		return
	}
	if exists {
		return
	}

	account := domain.BankAccount{
		ContactID:   spec.ContactID,
		IBAN:        spec.IBAN,
		BIC:         spec.BIC,
		Country:     spec.IBAN[:min(2, len(spec.IBAN))],
		BankName:    spec.BankName,
		Source:      m.cfg.Import.Source,
		Description: fmt.Sprintf("Bank account of mandate %s", spec.Reference),
		CreatedDate: m.now(),
	}
	if err := m.banking.CreateBankAccount(ctx, account); err != nil {
		m.result.Error(ctx, recordID, "Bank Account Error", fmt.Sprintf("Could not create bank account %s for contact %d: %v", spec.IBAN, spec.ContactID, err))
		return
	}
	m.result.Debug(recordID, fmt.Sprintf("Bank account %s created for contact %d", spec.IBAN, spec.ContactID))
}
