package usecase

import (
	"context"
	"errors"
	"fmt"

	"streetimport/internal/domain"
)

// Lookup is the answer of a resolver: either a contact id or a legitimate
// absence. Store failures are returned as errors instead.
type Lookup struct {
	ContactID int64
	Found     bool
}

// EntityResolver finds existing contacts by external identifiers. It never
// creates anything.
type EntityResolver struct {
	contacts ContactStore
	donorIDs DonorIDStore
}

// NewEntityResolver creates a resolver on top of the host store.
func NewEntityResolver(contacts ContactStore, donorIDs DonorIDStore) *EntityResolver {
	return &EntityResolver{contacts: contacts, donorIDs: donorIDs}
}

// FindContactByExternalID resolves an external donor id within the scope of
// one recruiting organisation. The same donor id under another organisation
// is another contact.
func (r *EntityResolver) FindContactByExternalID(ctx context.Context, donorID string, recruitingOrgID int64) (Lookup, error) {
	if donorID == "" || recruitingOrgID == 0 {
		return Lookup{}, nil
	}
	contactID, err := r.donorIDs.FindContactByDonorID(ctx, recruitingOrgID, donorID)
	if errors.Is(err, domain.ErrNotFound) {
		return Lookup{}, nil
	}
	if err != nil {
		return Lookup{}, fmt.Errorf("lookup of donor %s for recruiting organisation %d failed: %w", donorID, recruitingOrgID, err)
	}
	return Lookup{ContactID: contactID, Found: contactID != 0}, nil
}

// FindContactByIdentifier resolves an identifier of the given type, such as
// a recruiter id.
func (r *EntityResolver) FindContactByIdentifier(ctx context.Context, identifier, identifierType string) (Lookup, error) {
	if identifier == "" {
		return Lookup{}, nil
	}
	contactID, err := r.contacts.IdentifyContact(ctx, identifier, identifierType)
	if errors.Is(err, domain.ErrNotFound) {
		return Lookup{}, nil
	}
	if err != nil {
		return Lookup{}, fmt.Errorf("lookup of %s %s failed: %w", identifierType, identifier, err)
	}
	return Lookup{ContactID: contactID, Found: contactID != 0}, nil
}

// GetContact loads a contact, returning a nil contact when it does not exist.
func (r *EntityResolver) GetContact(ctx context.Context, id int64) (*domain.Contact, error) {
	contact, err := r.contacts.GetContact(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not get contact %d: %w", id, err)
	}
	return contact, nil
}
