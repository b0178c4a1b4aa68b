package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"streetimport/internal/config"
	"streetimport/internal/domain"
	"streetimport/internal/normalize"
)

const entityDonor = "Donor"

// Importer processes the records of one batch, strictly one after the
// other. Every record sees what the records before it have written.
type Importer struct {
	cfg         *config.Config
	logger      *zap.Logger
	result      *ImportResult
	recruiters  *RecruiterProcessor
	donors      *DonorReconciler
	mandates    *MandateExtractor
	consistency *ConsistencyChecker
	activities  *ActivityRecorder
}

// NewImporter wires all components of a batch on top of the host store.
func NewImporter(cfg *config.Config, store HostStore, logger *zap.Logger) (*Importer, error) {
	fakeEmail, err := normalize.NewFakeEmailMatcher(cfg.Import.FakeEmailPatterns)
	if err != nil {
		return nil, fmt.Errorf("could not create importer: %w", err)
	}

	result := NewImportResult(cfg, store, logger)
	resolver := NewEntityResolver(store, store)
	fraud := NewFraudDetector(cfg, store, resolver, result)

	return &Importer{
		cfg:         cfg,
		logger:      logger,
		result:      result,
		recruiters:  NewRecruiterProcessor(cfg, store, resolver, result),
		donors:      NewDonorReconciler(cfg, store, resolver, fakeEmail, result),
		mandates:    NewMandateExtractor(cfg, store, fraud, result),
		consistency: NewConsistencyChecker(cfg, store),
		activities:  NewActivityRecorder(cfg, store, result),
	}, nil
}

// Result gives access to the log of the batch.
func (im *Importer) Result() *ImportResult {
	return im.result
}

// Run reads the file and processes every record until the end or until a
// fatal error stops the batch. The returned error is only set when the file
// could not be read or ctx was cancelled; fatal errors are part of the result.
func (im *Importer) Run(ctx context.Context, source RecordSource, path string) (domain.BatchResult, error) {
	records, err := source.ReadRecords(ctx, path)
	if err != nil {
		im.result.Fatal(ctx, path, fmt.Sprintf("Could not read %s: %v", path, err))
		return im.FinalizeBatch(), fmt.Errorf("could not read records: %w", err)
	}
	im.logger.Info("Processing records", zap.String("file", path), zap.Int("records", len(records)),
		zap.String("batch_id", im.result.BatchID()))

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return im.FinalizeBatch(), err
		}
		if _, err := im.ProcessRecord(ctx, rec); errors.Is(err, ErrAborted) {
			break
		}
	}
	return im.FinalizeBatch(), nil
}

// ProcessRecord reconciles one record. The returned error wraps ErrAborted
// when the whole batch must stop; record level failures are only reported
// in the outcome.
func (im *Importer) ProcessRecord(ctx context.Context, rec domain.Record) (domain.ImportOutcome, error) {
	id := rec.ID()

	importType, ok := im.importType(rec)
	if !ok {
		msg := fmt.Sprintf("Loading type '%s' unknown, record skipped", rec.Get(domain.ColLoadingType))
		im.result.Error(ctx, id, "Loading Type Error", msg)
		return im.result.LogImport(id, false, entityDonor, msg), nil
	}

	recruitingOrg, err := im.recruiters.RecruitingOrganisation(ctx, rec)
	if err != nil {
		return im.result.LogImport(id, false, entityDonor, err.Error()), err
	}
	recruiter, err := im.recruiters.ProcessRecruiter(ctx, rec, recruitingOrg)
	if err != nil {
		return im.result.LogImport(id, false, entityDonor, err.Error()), err
	}

	donor, err := im.donors.Reconcile(ctx, rec, recruitingOrg)
	if err != nil {
		return im.result.LogImport(id, false, entityDonor, err.Error()), nil
	}

	if importType == domain.ImportWelcomeCall {
		verdict, err := im.consistency.CheckOrganizationPersonConsistency(ctx, rec)
		if err != nil {
			im.result.Error(ctx, id, "Consistency Check Error", err.Error())
			return im.result.LogImport(id, false, entityDonor, err.Error()), nil
		}
		if !verdict.Valid {
			im.result.Error(ctx, id, "Organization Consistency Error", verdict.Message)
		}
	}

	msg, err := im.consistency.DonorAlreadyHasIncomingActivity(ctx, &donor.Contact, importType)
	if err != nil {
		im.result.Error(ctx, id, "Consistency Check Error", err.Error())
		return im.result.LogImport(id, false, entityDonor, err.Error()), nil
	}
	if msg != "" {
		im.result.Error(ctx, id, "Activity Sequence Error", msg)
		return im.result.LogImport(id, false, entityDonor, msg), nil
	}

	var failure error
	mandateRef := rec.Get(domain.ColMandateRef)
	if importType == domain.ImportStreetRecruitment {
		mandate, err := im.mandates.Create(ctx, rec, donor.MandateContactID, rec.Get(domain.ColRecruiterID))
		if err != nil {
			failure = err
		} else if mandate != nil {
			mandateRef = mandate.Reference
		}
	}

	_, err = im.activities.Record(ctx, rec, ImportActivity{
		Type:        importType,
		Donor:       donor,
		Recruiter:   recruiter,
		MandateRef:  mandateRef,
		CompanyFlag: im.cfg.IsYes(rec.Get(domain.ColOrganizationFlag)),
	})
	if err != nil && failure == nil {
		failure = err
	}

	if failure != nil {
		return im.result.LogImport(id, false, entityDonor, failure.Error()), nil
	}
	return im.result.LogImport(id, true, entityDonor, fmt.Sprintf("contact %d", donor.Contact.ID)), nil
}

// FinalizeBatch produces the batch summary.
func (im *Importer) FinalizeBatch() domain.BatchResult {
	return im.result.Result()
}

func (im *Importer) importType(rec domain.Record) (domain.ImportType, bool) {
	name, ok := im.cfg.LoadingType(rec.Int(domain.ColLoadingType))
	if !ok {
		return "", false
	}
	switch name {
	case domain.LoadingStreetRecruitment:
		return domain.ImportStreetRecruitment, true
	case domain.LoadingWelcomeCall:
		return domain.ImportWelcomeCall, true
	}
	return "", false
}
