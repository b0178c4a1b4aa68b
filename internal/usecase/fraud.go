package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"streetimport/internal/config"
	"streetimport/internal/domain"
)

// FraudDetector flags mandates whose IBAN already belongs to other contacts.
type FraudDetector struct {
	cfg        *config.Config
	banking    BankingStore
	activities ActivityStore
	resolver   *EntityResolver
	result     *ImportResult
	now        func() time.Time
}

// NewFraudDetector wires a fraud detector for one batch.
func NewFraudDetector(cfg *config.Config, store HostStore, resolver *EntityResolver, result *ImportResult) *FraudDetector {
	return &FraudDetector{
		cfg:        cfg,
		banking:    store,
		activities: store,
		resolver:   resolver,
		result:     result,
		now:        time.Now,
	}
}

// CheckIBANAlreadyUsedForOtherContact returns the sorted, distinct ids of the
// contacts other than contactID holding a bank account with iban.
func (f *FraudDetector) CheckIBANAlreadyUsedForOtherContact(ctx context.Context, iban string, contactID int64) ([]int64, error) {
	holders, err := f.banking.ContactsWithIBAN(ctx, iban)
	if err != nil {
		return nil, fmt.Errorf("could not find holders of IBAN %s: %w", iban, err)
	}
	var others []int64
	for _, id := range holders {
		if id != contactID && id != 0 {
			others = append(others, id)
		}
	}
	slices.Sort(others)
	return slices.Compact(others), nil
}

// CreateFraudWarning records a fraud warning activity on the mandate holder.
// An unknown recruiter leaves the recruiter reference empty.
func (f *FraudDetector) CreateFraudWarning(ctx context.Context, mandate *domain.Mandate, others []int64, recruiterID string) (int64, error) {
	warning := domain.FraudWarning{
		TargetContactID:  mandate.ContactID,
		MandateReference: mandate.Reference,
		Message:          "IBAN already used for other contacts " + joinIDs(others),
		OtherContacts:    others,
	}
	switch mandate.EntityTable {
	case domain.EntityContribution:
		warning.ContributionID = mandate.EntityID
	case domain.EntityContributionRecur:
		warning.ContributionRecurID = mandate.EntityID
	}

	lookup, err := f.resolver.FindContactByIdentifier(ctx, recruiterID, f.cfg.Import.Recruiter.IdentifierType)
	if err == nil && lookup.Found {
		warning.RecruiterID = &lookup.ContactID
	}

	imp := f.cfg.Import
	activity := domain.Activity{
		TypeID:    imp.ActivityTypes.FraudWarning,
		StatusID:  imp.ActivityStatuses.Scheduled,
		Subject:   "Fraud Warning",
		Details:   warning.Message,
		DateTime:  f.now(),
		SourceID:  imp.AdminContactID,
		TargetIDs: []int64{mandate.ContactID},
	}
	activityID, err := f.activities.CreateFraudWarning(ctx, activity, warning)
	if err != nil {
		return 0, fmt.Errorf("could not create fraud warning for mandate %s: %w", mandate.Reference, err)
	}
	return activityID, nil
}

// Screen runs the IBAN check for a freshly created mandate and records a
// warning when needed. Nothing here blocks the record.
func (f *FraudDetector) Screen(ctx context.Context, recordID string, mandate *domain.Mandate, recruiterID string) {
	others, err := f.CheckIBANAlreadyUsedForOtherContact(ctx, mandate.IBAN, mandate.ContactID)
	if err != nil {
		f.result.Error(ctx, recordID, "Fraud Check Error", err.Error())
		return
	}
	if len(others) == 0 {
		return
	}
	if _, err := f.CreateFraudWarning(ctx, mandate, others, recruiterID); err != nil {
		f.result.Error(ctx, recordID, "Fraud Warning Error", err.Error())
		return
	}
	f.result.Warn(recordID, fmt.Sprintf("IBAN %s of mandate %s already used for other contacts %s", mandate.IBAN, mandate.Reference, joinIDs(others)))
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
