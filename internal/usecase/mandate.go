package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"streetimport/internal/config"
	"streetimport/internal/domain"
	"streetimport/internal/normalize"
)

// MandateExtractor derives a direct debit mandate from a record and submits
// it to the host store.
type MandateExtractor struct {
	cfg       *config.Config
	banking   BankingStore
	campaigns CampaignStore
	mandates  MandateStore
	options   OptionValueStore
	fraud     *FraudDetector
	result    *ImportResult
	now       func() time.Time
}

// NewMandateExtractor wires a mandate extractor for one batch.
func NewMandateExtractor(cfg *config.Config, store HostStore, fraud *FraudDetector, result *ImportResult) *MandateExtractor {
	return &MandateExtractor{
		cfg:       cfg,
		banking:   store,
		campaigns: store,
		mandates:  store,
		options:   store,
		fraud:     fraud,
		result:    result,
		now:       time.Now,
	}
}

// CycleDay is 21 for a frequency interval of 2 and 7 for anything else.
func CycleDay(interval int) int {
	if interval == 2 {
		return 21
	}
	return 7
}

func invalid(code domain.ValidationCode, severity domain.Severity, message string) *domain.ValidationError {
	return &domain.ValidationError{Code: code, Severity: severity, Title: "Mandate Validation Error", Message: message}
}

// Extract validates the record in a fixed order and returns the first
// failure as a *domain.ValidationError, or domain.ErrNoMandate when the
// record has no frequency unit. Non blocking corrections are logged on the
// way.
func (m *MandateExtractor) Extract(ctx context.Context, rec domain.Record, contactID int64) (*domain.MandateSpec, error) {
	id := rec.ID()

	rawAmount := rec.Get(domain.ColAmount)
	if rawAmount == "" {
		return nil, invalid(domain.MissingAmount, domain.SeverityError, "Amount missing, no mandate created")
	}
	reference := rec.Get(domain.ColMandateRef)
	if reference == "" {
		return nil, invalid(domain.MissingReference, domain.SeverityError, "Mandate reference missing, no mandate created")
	}
	unit := rec.Get(domain.ColFrequencyUnit)
	if unit == "" {
		return nil, domain.ErrNoMandate
	}
	frequency, ok := m.cfg.Frequency(unit)
	if !ok {
		return nil, invalid(domain.UnknownFrequencyUnit, domain.SeverityError,
			fmt.Sprintf("Frequency unit '%s' unknown, no mandate created", unit))
	}
	frequency.Unit = m.frequencyUnit(ctx, id, frequency.Unit)
	cycleDay := CycleDay(rec.Int(domain.ColFrequencyInt))

	iban := normalize.IBAN(rec.Get(domain.ColIBAN))
	if iban == "" {
		return nil, invalid(domain.MissingIBAN, domain.SeverityError, "IBAN missing, no mandate created")
	}

	bic := rec.Get(domain.ColBIC)
	bankName := rec.Get(domain.ColBankName)
	if bic == "" {
		info, err := m.banking.LookupBIC(ctx, iban)
		if err != nil || info == nil || info.BIC == "" {
			ve := invalid(domain.MissingBIC, domain.SeverityInfo,
				fmt.Sprintf("BIC missing and could not be looked up for IBAN %s, no mandate created", iban))
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				ve.Err = err
			}
			return nil, ve
		}
		bic = info.BIC
		if bankName == "" {
			bankName = info.Title
		}
	}

	now := m.now()
	startDate := m.startDate(id, rec.Get(domain.ColStartDate), now)

	signatureDate, ok := normalize.Date(rec.Get(domain.ColRecruitmentDate))
	if !ok {
		signatureDate = normalize.DateOnly(now)
	}

	endDate := m.endDate(id, rec.Get(domain.ColEndDate), startDate)

	amount, err := normalize.Amount(rawAmount)
	if err != nil || !amount.IsPositive() {
		ve := invalid(domain.MissingAmount, domain.SeverityError,
			fmt.Sprintf("Amount '%s' is not a positive amount, no mandate created", rawAmount))
		ve.Err = err
		return nil, ve
	}

	spec := &domain.MandateSpec{
		ContactID:       contactID,
		Reference:       reference,
		Amount:          amount,
		Currency:        m.cfg.Import.Currency,
		IBAN:            iban,
		BIC:             bic,
		BankName:        bankName,
		StartDate:       startDate,
		EndDate:         endDate,
		SignatureDate:   signatureDate,
		ValidationDate:  now,
		CreationDate:    now,
		Frequency:       frequency,
		CycleDay:        cycleDay,
		FinancialTypeID: m.cfg.FinancialTypeID(frequency.Type),
		Source:          m.cfg.Import.Source,
	}
	spec.CampaignID = m.campaign(ctx, id, rec.Int64(domain.ColCampaignID))
	return spec, nil
}

// frequencyUnit maps the configured unit to the host option value when a
// frequency unit option group is configured.
func (m *MandateExtractor) frequencyUnit(ctx context.Context, recordID, unit string) string {
	group := m.cfg.Import.OptionGroups.FrequencyUnit
	if group == "" {
		return unit
	}
	value, err := m.options.GetOptionValue(ctx, group, strings.ToLower(unit))
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			m.result.Warn(recordID, fmt.Sprintf("Frequency unit %s could not be looked up, used as is: %v", unit, err))
		}
		return unit
	}
	return value
}

// startDate never lies before today plus the configured offset.
func (m *MandateExtractor) startDate(recordID, raw string, now time.Time) time.Time {
	earliest := normalize.DateOnly(now).AddDate(0, 0, m.cfg.Import.OffsetDays)
	start, ok := normalize.Date(raw)
	if !ok {
		if raw != "" {
			m.result.Warn(recordID, fmt.Sprintf("Start date '%s' could not be parsed, set to %s", raw, earliest.Format(time.DateOnly)))
		}
		return earliest
	}
	if start.Before(earliest) {
		m.result.Debug(recordID, fmt.Sprintf("Start date %s moved to %s", start.Format(time.DateOnly), earliest.Format(time.DateOnly)))
		return earliest
	}
	return start
}

// endDate is never earlier than startDate. An unparsable end date is dropped.
func (m *MandateExtractor) endDate(recordID, raw string, start time.Time) *time.Time {
	if raw == "" {
		return nil
	}
	end, ok := normalize.Date(raw)
	if !ok {
		m.result.Warn(recordID, fmt.Sprintf("End date '%s' could not be parsed, mandate created without end date", raw))
		return nil
	}
	if end.Before(start) {
		end = start
	}
	return &end
}

func (m *MandateExtractor) campaign(ctx context.Context, recordID string, campaignID int64) int64 {
	if campaignID == 0 {
		return 0
	}
	exists, err := m.campaigns.CampaignExists(ctx, campaignID)
	if err != nil {
		m.result.Error(ctx, recordID, "Campaign Lookup Error", fmt.Sprintf("Could not check campaign %d: %v", campaignID, err))
		return 0
	}
	if !exists {
		m.result.Error(ctx, recordID, "Campaign Not Found", fmt.Sprintf("Campaign %d not found, mandate created without campaign", campaignID))
		return 0
	}
	return campaignID
}

// Create extracts, validates and submits the mandate of the record. A nil
// mandate with a nil error means no mandate was intended or a soft
// validation failure occurred. Every failure has been logged before it is
// returned.
func (m *MandateExtractor) Create(ctx context.Context, rec domain.Record, contactID int64, recruiterID string) (*domain.Mandate, error) {
	id := rec.ID()

	spec, err := m.Extract(ctx, rec, contactID)
	if errors.Is(err, domain.ErrNoMandate) {
		m.result.Info(id, err.Error())
		return nil, nil
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		m.result.LogValidation(ctx, id, ve)
		if ve.Severity < domain.SeverityError {
			return nil, nil
		}
		return nil, ve
	}
	if err != nil {
		return nil, err
	}

	mandate, err := m.mandates.CreateMandate(ctx, *spec)
	if err != nil {
		m.result.Error(ctx, id, "Create Mandate Error", fmt.Sprintf("Error while trying to create mandate. Error was: %v", err))
		return nil, fmt.Errorf("could not create mandate %s: %w", spec.Reference, err)
	}
	m.result.Debug(id, fmt.Sprintf("Mandate %s created for contact %d", mandate.Reference, contactID))

	m.fraud.Screen(ctx, id, mandate, recruiterID)
	m.saveBankAccount(ctx, id, spec)
	return mandate, nil
}
