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

// ActivityRecorder creates the street recruitment and welcome call
// activities of imported records.
type ActivityRecorder struct {
	cfg        *config.Config
	activities ActivityStore
	campaigns  CampaignStore
	options    OptionValueStore
	result     *ImportResult
	now        func() time.Time
}

// NewActivityRecorder wires an activity recorder for one batch.
func NewActivityRecorder(cfg *config.Config, store HostStore, result *ImportResult) *ActivityRecorder {
	return &ActivityRecorder{
		cfg:        cfg,
		activities: store,
		campaigns:  store,
		options:    store,
		result:     result,
		now:        time.Now,
	}
}

// ImportActivity is what the importer knows when the activity is recorded.
type ImportActivity struct {
	Type        domain.ImportType
	Donor       *domain.Donor
	Recruiter   *domain.Contact
	MandateRef  string
	CompanyFlag bool
}

// Record creates the activity targeting the donor with the recruiter as
// source, and stores the street recruitment data with it.
func (a *ActivityRecorder) Record(ctx context.Context, rec domain.Record, in ImportActivity) (int64, error) {
	id := rec.ID()
	types := a.cfg.Import.ActivityTypes

	typeID, subject := types.StreetRecruitment, domain.LoadingStreetRecruitment
	if in.Type == domain.ImportWelcomeCall {
		typeID, subject = types.WelcomeCall, domain.LoadingWelcomeCall
	}

	when, ok := normalize.Date(rec.Get(domain.ColRecruitmentDate))
	if !ok {
		when = a.now()
	}

	campaignID := a.campaign(ctx, id, rec.Int64(domain.ColCampaignID))
	activity := domain.Activity{
		TypeID:     typeID,
		StatusID:   a.cfg.Import.ActivityStatuses.Completed,
		Subject:    a.ConcatSubject(ctx, subject, campaignID),
		DateTime:   when,
		SourceID:   in.Recruiter.ID,
		TargetIDs:  []int64{in.Donor.Contact.ID},
		CampaignID: campaignID,
	}

	data := &domain.StreetRecruitmentData{
		MandateReference: in.MandateRef,
		NewOrgMandate:    in.CompanyFlag,
		AreasOfInterest:  a.AreasOfInterest(ctx, id, rec.Get(domain.ColAreasOfInterest)),
		RecruiterID:      in.Recruiter.ID,
	}
	if in.Donor.Organization != nil {
		data.CompanyID = in.Donor.Organization.ID
	}

	activityID, err := a.activities.CreateActivity(ctx, activity, data)
	if err != nil {
		a.result.Error(ctx, id, "Create Activity Error", fmt.Sprintf("Could not create %s activity for contact %d: %v", subject, in.Donor.Contact.ID, err))
		return 0, fmt.Errorf("could not create activity: %w", err)
	}
	a.result.Debug(id, fmt.Sprintf("%s activity %d created for contact %d", subject, activityID, in.Donor.Contact.ID))
	return activityID, nil
}

// ConcatSubject appends the campaign title to the subject. The subject is
// returned unchanged when the campaign has no title.
func (a *ActivityRecorder) ConcatSubject(ctx context.Context, subject string, campaignID int64) string {
	if subject == "" || campaignID == 0 {
		return subject
	}
	title, err := a.campaigns.CampaignTitle(ctx, campaignID)
	if err != nil || title == "" {
		return subject
	}
	return subject + " - Campaign: " + title
}

// AreasOfInterest resolves the "/" separated labels to option values,
// creating unknown labels. Labels that cannot be resolved are skipped.
func (a *ActivityRecorder) AreasOfInterest(ctx context.Context, recordID, raw string) string {
	group := a.cfg.Import.OptionGroups.AreasOfInterest
	labels := normalize.SplitLabels(raw)
	if group == "" || len(labels) == 0 {
		return ""
	}
	var values []string
	for _, label := range labels {
		value, err := a.options.GetOrCreateOptionValue(ctx, group, label)
		if err != nil {
			a.result.Warn(recordID, fmt.Sprintf("Area of interest '%s' could not be stored: %v", label, err))
			continue
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return ""
	}
	return domain.ValueSeparator + strings.Join(values, domain.ValueSeparator) + domain.ValueSeparator
}

func (a *ActivityRecorder) campaign(ctx context.Context, recordID string, campaignID int64) int64 {
	if campaignID == 0 {
		return 0
	}
	exists, err := a.campaigns.CampaignExists(ctx, campaignID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		a.result.Warn(recordID, fmt.Sprintf("Could not check campaign %d, activity created without campaign: %v", campaignID, err))
		return 0
	}
	if !exists {
		a.result.Warn(recordID, fmt.Sprintf("Campaign %d not found, activity created without campaign", campaignID))
		return 0
	}
	return campaignID
}
