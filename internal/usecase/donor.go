package usecase

import (
	"context"
	"errors"
	"fmt"

	"streetimport/internal/config"
	"streetimport/internal/domain"
	"streetimport/internal/normalize"
)

var (
	errDonorExists    = errors.New("donor already exists where new donor expected")
	errInvalidContact = errors.New("invalid contact data")
	errNoOrganization = errors.New("no organization name found in notes")
)

// DonorReconciler matches or creates the donor of a record and attaches its
// addresses, phones and emails.
//
// Per record: resolve existing, then either update the existing donor or
// create a new one, then attach sub entities.
type DonorReconciler struct {
	cfg       *config.Config
	contacts  ContactStore
	donorIDs  DonorIDStore
	locations LocationStore
	resolver  *EntityResolver
	fakeEmail *normalize.FakeEmailMatcher
	result    *ImportResult
}

// NewDonorReconciler wires a reconciler for one batch.
func NewDonorReconciler(cfg *config.Config, store HostStore, resolver *EntityResolver, fakeEmail *normalize.FakeEmailMatcher, result *ImportResult) *DonorReconciler {
	return &DonorReconciler{
		cfg:       cfg,
		contacts:  store,
		donorIDs:  store,
		locations: store,
		resolver:  resolver,
		fakeEmail: fakeEmail,
		result:    result,
	}
}

// Reconcile returns the donor for the record. A nil donor with an error means
// the record cannot continue; the reason has already been logged.
func (d *DonorReconciler) Reconcile(ctx context.Context, rec domain.Record, recruitingOrg *domain.Contact) (*domain.Donor, error) {
	id := rec.ID()
	donorID := rec.Get(domain.ColDonorID)

	lookup, err := d.resolver.FindContactByExternalID(ctx, donorID, recruitingOrg.ID)
	if err != nil {
		d.result.Error(ctx, id, "Lookup Error", err.Error())
		return nil, err
	}

	if lookup.Found {
		existing, err := d.resolver.GetContact(ctx, lookup.ContactID)
		if err != nil {
			d.result.Error(ctx, id, "Lookup Error", err.Error())
			return nil, err
		}
		if existing != nil {
			if d.isStreetRecruitment(rec) {
				msg := fmt.Sprintf("Donor with ID %s for recr. org. %d already exists where new donor expected in StreetRecruitment. No act. or mandate created",
					donorID, recruitingOrg.ID)
				d.result.Error(ctx, id, "Donor Exists", msg)
				return nil, errDonorExists
			}
			return d.updateExisting(ctx, rec, existing), nil
		}
		d.result.Warn(id, fmt.Sprintf("Donor ID %s points to missing contact %d, creating a new donor", donorID, lookup.ContactID))
	}

	return d.createNew(ctx, rec, recruitingOrg)
}

func (d *DonorReconciler) isStreetRecruitment(rec domain.Record) bool {
	name, ok := d.cfg.LoadingType(rec.Int(domain.ColLoadingType))
	return ok && name == domain.LoadingStreetRecruitment
}

func (d *DonorReconciler) updateExisting(ctx context.Context, rec domain.Record, existing *domain.Contact) *domain.Donor {
	id := rec.ID()
	current := existing

	update := d.changedFields(rec, existing)
	if !update.IsEmpty() {
		if err := d.contacts.UpdateContact(ctx, update); err != nil {
			d.result.Error(ctx, id, "Update Contact Error", fmt.Sprintf("Could not update contact %d: %v", existing.ID, err))
		} else if refreshed, err := d.resolver.GetContact(ctx, existing.ID); err == nil && refreshed != nil {
			current = refreshed
		}
	}

	d.AttachSubentities(ctx, rec, current.ID)
	return &domain.Donor{Contact: *current, MandateContactID: current.ID}
}

// changedFields compares the record with the stored donor. Only individuals
// carry the compared fields. Empty or unparsable record values never
// overwrite stored data.
func (d *DonorReconciler) changedFields(rec domain.Record, donor *domain.Contact) domain.ContactUpdate {
	update := domain.ContactUpdate{ID: donor.ID}
	if donor.Type != domain.ContactTypeIndividual {
		return update
	}

	if first := rec.Get(domain.ColFirstName); first != "" && first != donor.FirstName {
		update.FirstName = &first
	}
	if last := rec.Get(domain.ColLastName); last != "" && last != donor.LastName {
		update.LastName = &last
	}
	if birth, ok := normalize.Date(rec.Get(domain.ColBirthDate)); ok && !normalize.SameDay(&birth, donor.BirthDate) {
		update.BirthDate = &birth
	}
	if rule, ok := d.prefixRule(rec.Get(domain.ColPrefix)); ok && rule.PrefixID != donor.PrefixID {
		prefixID, genderID := rule.PrefixID, rule.GenderID
		update.PrefixID = &prefixID
		update.GenderID = &genderID
	}
	return update
}

func (d *DonorReconciler) prefixRule(prefix string) (config.PrefixRule, bool) {
	if prefix == "" {
		return config.PrefixRule{}, false
	}
	if rule, ok := d.cfg.Import.Prefixes[prefix]; ok {
		return rule, true
	}
	for k, rule := range d.cfg.Import.Prefixes {
		if equalFoldTrim(k, prefix) {
			return rule, true
		}
	}
	return config.PrefixRule{}, false
}

func (d *DonorReconciler) createNew(ctx context.Context, rec domain.Record, recruitingOrg *domain.Contact) (*domain.Donor, error) {
	id := rec.ID()

	payload := d.donorPayload(rec)
	if err := d.validatePayload(ctx, id, payload); err != nil {
		return nil, err
	}

	contact, err := d.contacts.CreateContact(ctx, payload)
	if err != nil {
		d.result.Error(ctx, id, "Create Contact Error", fmt.Sprintf("Could not create donor: %v", err))
		return nil, fmt.Errorf("could not create donor: %w", err)
	}
	d.result.Debug(id, fmt.Sprintf("Donor %d created", contact.ID))

	donorID := rec.Get(domain.ColDonorID)
	d.setDonorID(ctx, id, contact.ID, donorID, recruitingOrg.ID)
	donor := &domain.Donor{Contact: *contact, MandateContactID: contact.ID, Created: true}

	if d.cfg.IsYes(rec.Get(domain.ColOrganizationFlag)) {
		org, err := d.createOrganization(ctx, rec, contact.ID)
		if err != nil {
			d.result.Error(ctx, id, "Create Organization for Donor Error", err.Error())
		} else {
			d.setDonorID(ctx, id, org.ID, donorID, recruitingOrg.ID)
			donor.MandateContactID = org.ID
			donor.Organization = org
		}
	}

	d.AttachSubentities(ctx, rec, contact.ID)
	return donor, nil
}

// donorPayload builds a household when the prefix is a household prefix,
// an individual otherwise.
func (d *DonorReconciler) donorPayload(rec domain.Record) domain.ContactPayload {
	prefix := rec.Get(domain.ColPrefix)
	if d.cfg.IsHouseholdPrefix(prefix) {
		return domain.HouseholdPayload{HouseholdName: rec.Get(domain.ColLastName)}
	}

	p := domain.IndividualPayload{
		FirstName: rec.Get(domain.ColFirstName),
		LastName:  rec.Get(domain.ColLastName),
	}
	if rule, ok := d.prefixRule(prefix); ok {
		p.PrefixID = rule.PrefixID
		p.GenderID = rule.GenderID
	}
	if raw := rec.Get(domain.ColBirthDate); raw != "" {
		if birth, ok := normalize.Date(raw); ok {
			p.BirthDate = &birth
		} else {
			d.result.Warn(rec.ID(), fmt.Sprintf("Could not format birth date %s, empty birth date assumed. Correct manually!", raw))
		}
	}
	return p
}

func (d *DonorReconciler) validatePayload(ctx context.Context, recordID string, payload domain.ContactPayload) error {
	switch p := payload.(type) {
	case domain.IndividualPayload:
		switch {
		case p.FirstName == "" && p.LastName == "":
			d.result.Error(ctx, recordID, "Create Contact Error", "Contact missing first_name and last_name")
			return errInvalidContact
		case p.FirstName == "":
			d.result.Warn(recordID, "Donor missing first_name, contact created without first name")
		case p.LastName == "":
			d.result.Warn(recordID, "Donor missing last_name, contact created without last name")
		}
	case domain.HouseholdPayload:
		if p.HouseholdName == "" {
			d.result.Error(ctx, recordID, "Create Contact Error", "Contact missing household_name")
			return errInvalidContact
		}
	case domain.OrganizationPayload:
		if p.OrganizationName == "" {
			d.result.Error(ctx, recordID, "Create Contact Error", "Contact missing organization_name")
			return errInvalidContact
		}
	default:
		return fmt.Errorf("unsupported contact payload %T", payload)
	}
	return nil
}

// setDonorID maps (recruiting organisation, donor id) to the contact. An
// existing mapping is replaced.
func (d *DonorReconciler) setDonorID(ctx context.Context, recordID string, contactID int64, donorID string, recruitingOrgID int64) {
	var missing string
	switch {
	case contactID == 0:
		missing = "contactId missing"
	case donorID == "":
		missing = "donorId missing"
	case recruitingOrgID == 0:
		missing = "recruitingOrganizationId missing"
	}
	if missing != "" {
		d.result.Error(ctx, recordID, "", "Cannot set Donor ID, "+missing)
		return
	}
	if err := d.donorIDs.UpsertDonorID(ctx, recruitingOrgID, donorID, contactID); err != nil {
		d.result.Error(ctx, recordID, "", fmt.Sprintf("Cannot set Donor ID %s for contact %d: %v", donorID, contactID, err))
	}
}

// createOrganization creates the organisation described in the notes and
// makes the individual its employee when a job title is given.
func (d *DonorReconciler) createOrganization(ctx context.Context, rec domain.Record, individualID int64) (*domain.Contact, error) {
	data, ok := normalize.OrganizationFromNotes(rec.Raw(domain.ColNotes))
	if !ok {
		return nil, errNoOrganization
	}

	org, err := d.contacts.CreateContact(ctx, domain.OrganizationPayload{
		OrganizationName:   data.Name,
		OrganizationNumber: data.Number,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create organization %s: %w", data.Name, err)
	}

	if data.JobTitle != "" {
		jobTitle, employerID := data.JobTitle, org.ID
		err := d.contacts.UpdateContact(ctx, domain.ContactUpdate{ID: individualID, JobTitle: &jobTitle, EmployerID: &employerID})
		if err != nil {
			d.result.Warn(rec.ID(), fmt.Sprintf("Could not set job title of contact %d: %v", individualID, err))
		}
	}
	d.result.Debug(rec.ID(), fmt.Sprintf("Organization %d created for donor %d", org.ID, individualID))
	return org, nil
}
