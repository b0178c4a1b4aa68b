package usecase

import (
	"context"
	"errors"
	"fmt"

	"streetimport/internal/config"
	"streetimport/internal/domain"
)

// Consistency is the verdict of a consistency check.
type Consistency struct {
	Valid   bool
	Message string
}

// ConsistencyChecker validates records against the street import history of
// a donor. It never writes.
//
// Absence of history is handled the same way by both checks: a missing or
// unrecognised previous activity counts as "no previous activity".
type ConsistencyChecker struct {
	cfg        *config.Config
	activities ActivityStore
}

// NewConsistencyChecker creates a checker on top of the activity store.
func NewConsistencyChecker(cfg *config.Config, activities ActivityStore) *ConsistencyChecker {
	return &ConsistencyChecker{cfg: cfg, activities: activities}
}

// CheckOrganizationPersonConsistency compares the organisation flag of the
// record with the one stored by the latest street recruitment of the same
// mandate reference.
func (c *ConsistencyChecker) CheckOrganizationPersonConsistency(ctx context.Context, rec domain.Record) (Consistency, error) {
	reference := rec.Get(domain.ColMandateRef)
	if reference == "" {
		return Consistency{Valid: true}, nil
	}

	hadOrganization, err := c.activities.StreetRecruitmentOrgFlag(ctx, reference, c.cfg.Import.ActivityTypes.StreetRecruitment)
	if errors.Is(err, domain.ErrNotFound) {
		return Consistency{Valid: true}, nil
	}
	if err != nil {
		return Consistency{}, fmt.Errorf("could not find street recruitment of mandate %s: %w", reference, err)
	}

	hasOrganization := c.cfg.IsYes(rec.Get(domain.ColOrganizationFlag))
	switch {
	case !hadOrganization && hasOrganization:
		return Consistency{Message: "Street Recruitment did not mention a company where Welcome Call now does! Please check and fix manually"}, nil
	case hadOrganization && !hasOrganization:
		return Consistency{Message: "Street Recruitment did mention a company where Welcome Call now does not! Please check and fix manually"}, nil
	}
	return Consistency{Valid: true}, nil
}

// DonorAlreadyHasIncomingActivity returns a message when the incoming
// activity type may not follow the donor's latest street import activity,
// and "" when it may.
func (c *ConsistencyChecker) DonorAlreadyHasIncomingActivity(ctx context.Context, donor *domain.Contact, incoming domain.ImportType) (string, error) {
	types := c.cfg.Import.ActivityTypes
	latest, err := c.activities.LatestImportActivityType(ctx, donor.ID, []int{types.StreetRecruitment, types.WelcomeCall})
	if errors.Is(err, domain.ErrNotFound) {
		latest = 0
	} else if err != nil {
		return "", fmt.Errorf("could not find latest street import activity of contact %d: %w", donor.ID, err)
	}

	previous := domain.ImportType("")
	switch latest {
	case types.StreetRecruitment:
		previous = domain.ImportStreetRecruitment
	case types.WelcomeCall:
		previous = domain.ImportWelcomeCall
	}

	switch incoming {
	case domain.ImportStreetRecruitment:
		if previous == domain.ImportWelcomeCall {
			return "Donor already has a welcome call as its latest street import activity, street recruitment must come first", nil
		}
	case domain.ImportWelcomeCall:
		switch previous {
		case "":
			return "Donor has no street recruitment when trying to add a welcome call", nil
		case domain.ImportWelcomeCall:
			return "Donor already has a welcome call as its latest street import activity", nil
		}
	}
	return "", nil
}
