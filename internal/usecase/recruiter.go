package usecase

import (
	"context"
	"fmt"

	"streetimport/internal/config"
	"streetimport/internal/domain"
)

// RecruiterProcessor resolves the recruiting organisation and the recruiter
// of a record.
type RecruiterProcessor struct {
	cfg       *config.Config
	contacts  ContactStore
	locations LocationStore
	resolver  *EntityResolver
	result    *ImportResult
}

// NewRecruiterProcessor wires a recruiter processor for one batch.
func NewRecruiterProcessor(cfg *config.Config, store HostStore, resolver *EntityResolver, result *ImportResult) *RecruiterProcessor {
	return &RecruiterProcessor{
		cfg:       cfg,
		contacts:  store,
		locations: store,
		resolver:  resolver,
		result:    result,
	}
}

// RecruitingOrganisation loads the organisation credited with the record.
// Without it nothing in the batch can be attributed, so failure aborts.
func (p *RecruiterProcessor) RecruitingOrganisation(ctx context.Context, rec domain.Record) (*domain.Contact, error) {
	id := rec.ID()
	orgID := rec.Int64(domain.ColRecruitingOrgID)
	if orgID == 0 {
		return nil, p.result.Abort(ctx, id, "Recruiting organization ID not given")
	}
	org, err := p.resolver.GetContact(ctx, orgID)
	if err != nil {
		return nil, p.result.Abort(ctx, id, fmt.Sprintf("Recruiting organization %d could not be loaded: %v", orgID, err))
	}
	if org == nil {
		return nil, p.result.Abort(ctx, id, fmt.Sprintf("Recruiting organization %d not found", orgID))
	}
	return org, nil
}

// ProcessRecruiter returns the recruiter of the record, creating it together
// with its relationship to the recruiting organisation when it is unknown.
func (p *RecruiterProcessor) ProcessRecruiter(ctx context.Context, rec domain.Record, recruitingOrg *domain.Contact) (*domain.Contact, error) {
	id := rec.ID()
	recruiterID := rec.Get(domain.ColRecruiterID)

	lookup, err := p.resolver.FindContactByIdentifier(ctx, recruiterID, p.cfg.Import.Recruiter.IdentifierType)
	if err != nil {
		return nil, p.result.Abort(ctx, id, fmt.Sprintf("Recruiter %s could not be looked up: %v", recruiterID, err))
	}
	if lookup.Found {
		recruiter, err := p.resolver.GetContact(ctx, lookup.ContactID)
		if err != nil {
			return nil, p.result.Abort(ctx, id, fmt.Sprintf("Recruiter %s could not be loaded: %v", recruiterID, err))
		}
		if recruiter == nil {
			return nil, p.result.Abort(ctx, id, fmt.Sprintf("Recruiter %s identified as contact %d, which does not exist", recruiterID, lookup.ContactID))
		}
		p.result.Debug(id, fmt.Sprintf("Recruiter %s found as contact %d", recruiterID, recruiter.ID))
		return recruiter, nil
	}

	recruiter, err := p.contacts.CreateContact(ctx, p.recruiterPayload(rec, recruitingOrg))
	if err != nil {
		return nil, p.result.Abort(ctx, id, fmt.Sprintf("Recruiter %s could not be created: %v", recruiterID, err))
	}
	p.result.Debug(id, fmt.Sprintf("Recruiter %s created as contact %d", recruiterID, recruiter.ID))

	err = p.locations.CreateRelationship(ctx, domain.Relationship{
		ContactIDA:         recruitingOrg.ID,
		ContactIDB:         recruiter.ID,
		RelationshipTypeID: p.cfg.Import.Recruiter.RelationshipTypeID,
	})
	if err != nil {
		p.result.Error(ctx, id, "Create Relationship Error",
			fmt.Sprintf("Could not link recruiter %d to recruiting organization %d: %v", recruiter.ID, recruitingOrg.ID, err))
	}
	return recruiter, nil
}

// recruiterPayload uses the recruiter names from the record. A recruiter
// without names is named after its id and the recruiting organisation.
func (p *RecruiterProcessor) recruiterPayload(rec domain.Record, recruitingOrg *domain.Contact) domain.IndividualPayload {
	payload := domain.IndividualPayload{
		SubType:     p.cfg.Import.Recruiter.ContactSubType,
		FirstName:   rec.Get(domain.ColRecruiterFirst),
		LastName:    rec.Get(domain.ColRecruiterLast),
		RecruiterID: rec.Get(domain.ColRecruiterID),
	}
	if payload.FirstName == "" && payload.LastName == "" {
		payload.FirstName = payload.RecruiterID
		payload.LastName = orgName(recruitingOrg)
		return payload
	}
	prefix := rec.Get(domain.ColRecruiterPrefix)
	if rule, ok := p.cfg.Import.Prefixes[prefix]; ok {
		payload.PrefixID = rule.PrefixID
		payload.GenderID = rule.GenderID
	} else {
		for k, rule := range p.cfg.Import.Prefixes {
			if prefix != "" && equalFoldTrim(k, prefix) {
				payload.PrefixID = rule.PrefixID
				payload.GenderID = rule.GenderID
				break
			}
		}
	}
	return payload
}

func orgName(c *domain.Contact) string {
	if c.OrganizationName != "" {
		return c.OrganizationName
	}
	return c.DisplayName
}
