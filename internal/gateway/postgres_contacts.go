package gateway

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"streetimport/internal/domain"
)

// CreateContact inserts a contact. An individual carrying a recruiter id is
// registered under the recruiter identifier type in the same transaction.
func (s *PostgresStore) CreateContact(ctx context.Context, payload domain.ContactPayload) (*domain.Contact, error) {
	contact := domain.Contact{Type: payload.ContactType()}
	var orgNumber, identifier string
	switch p := payload.(type) {
	case domain.IndividualPayload:
		contact.SubType = p.SubType
		contact.FirstName = p.FirstName
		contact.LastName = p.LastName
		contact.PrefixID = p.PrefixID
		contact.GenderID = p.GenderID
		contact.BirthDate = p.BirthDate
		identifier = p.RecruiterID
	case domain.HouseholdPayload:
		contact.HouseholdName = p.HouseholdName
	case domain.OrganizationPayload:
		contact.OrganizationName = p.OrganizationName
		orgNumber = p.OrganizationNumber
	default:
		return nil, fmt.Errorf("unsupported contact payload %T", payload)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO contact (
			contact_type, contact_sub_type, first_name, last_name, household_name,
			organization_name, organization_number, birth_date, prefix_id, gender_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		string(contact.Type),
		contact.SubType,
		contact.FirstName,
		contact.LastName,
		contact.HouseholdName,
		contact.OrganizationName,
		orgNumber,
		contact.BirthDate,
		contact.PrefixID,
		contact.GenderID,
	).Scan(&contact.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert contact: %w", err)
	}

	if identifier != "" {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO contact_identity (contact_id, identifier_type, identifier) VALUES ($1, $2, $3)`,
			contact.ID, s.identifierType, identifier,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to register identifier %s: %w", identifier, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit contact: %w", err)
	}

	contact.DisplayName = displayName(contact)
	s.logger.Debug("contact created",
		zap.Int64("contact_id", contact.ID),
		zap.String("contact_type", string(contact.Type)),
	)
	return &contact, nil
}

// UpdateContact writes only the fields set in update.
func (s *PostgresStore) UpdateContact(ctx context.Context, update domain.ContactUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	var sets []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if update.FirstName != nil {
		add("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		add("last_name", *update.LastName)
	}
	if update.BirthDate != nil {
		add("birth_date", *update.BirthDate)
	}
	if update.PrefixID != nil {
		add("prefix_id", *update.PrefixID)
	}
	if update.GenderID != nil {
		add("gender_id", *update.GenderID)
	}
	if update.JobTitle != nil {
		add("job_title", *update.JobTitle)
	}
	if update.EmployerID != nil {
		add("employer_id", *update.EmployerID)
	}

	args = append(args, update.ID)
	query := fmt.Sprintf(`UPDATE contact SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update contact %d: %w", update.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("contact %d: %w", update.ID, domain.ErrNotFound)
	}
	return nil
}

// GetContact loads a contact by id.
func (s *PostgresStore) GetContact(ctx context.Context, id int64) (*domain.Contact, error) {
	query := `
		SELECT
			id,
			contact_type,
			contact_sub_type,
			first_name,
			last_name,
			household_name,
			organization_name,
			birth_date,
			prefix_id,
			gender_id,
			job_title,
			employer_id
		FROM contact
		WHERE id = $1
	`

	var c domain.Contact
	var contactType string
	var birthDate sql.NullTime
	var employerID sql.NullInt64
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&contactType,
		&c.SubType,
		&c.FirstName,
		&c.LastName,
		&c.HouseholdName,
		&c.OrganizationName,
		&birthDate,
		&c.PrefixID,
		&c.GenderID,
		&c.JobTitle,
		&employerID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact %d: %w", id, err)
	}

	c.Type = domain.ContactType(contactType)
	if birthDate.Valid {
		bd := birthDate.Time
		c.BirthDate = &bd
	}
	c.EmployerID = employerID.Int64
	c.DisplayName = displayName(c)
	return &c, nil
}

// IdentifyContact finds the contact registered under identifier.
func (s *PostgresStore) IdentifyContact(ctx context.Context, identifier, identifierType string) (int64, error) {
	query := `
		SELECT contact_id
		FROM contact_identity
		WHERE identifier = $1 AND identifier_type = $2
		ORDER BY contact_id
		LIMIT 1
	`
	var id int64
	err := s.db.QueryRowContext(ctx, query, identifier, identifierType).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("failed to identify %s %s: %w", identifierType, identifier, err)
	}
	return id, nil
}

// FindContactByDonorID resolves an external donor id scoped to its
// recruiting organisation.
func (s *PostgresStore) FindContactByDonorID(ctx context.Context, recruitingOrgID int64, donorID string) (int64, error) {
	query := `
		SELECT contact_id
		FROM donor_link
		WHERE recruiting_org_id = $1 AND donor_id = $2
	`
	var id int64
	err := s.db.QueryRowContext(ctx, query, recruitingOrgID, donorID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("failed to find donor %s of organization %d: %w", donorID, recruitingOrgID, err)
	}
	return id, nil
}

// UpsertDonorID points the external donor id at contactID.
func (s *PostgresStore) UpsertDonorID(ctx context.Context, recruitingOrgID int64, donorID string, contactID int64) error {
	query := `
		INSERT INTO donor_link (recruiting_org_id, donor_id, contact_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (recruiting_org_id, donor_id) DO UPDATE SET contact_id = EXCLUDED.contact_id
	`
	if _, err := s.db.ExecContext(ctx, query, recruitingOrgID, donorID, contactID); err != nil {
		return fmt.Errorf("failed to store donor %s of organization %d: %w", donorID, recruitingOrgID, err)
	}
	return nil
}

// CountryIDByISO resolves a two letter country code.
func (s *PostgresStore) CountryIDByISO(ctx context.Context, iso string) (int, error) {
	var id int
	err := s.db.QueryRowContext(ctx, `SELECT id FROM country WHERE iso_code = $1`, strings.ToUpper(iso)).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("failed to resolve country %s: %w", iso, err)
	}
	return id, nil
}

// CountAddresses counts the contact's addresses equal to address.
func (s *PostgresStore) CountAddresses(ctx context.Context, address domain.Address) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM address
		WHERE contact_id = $1
			AND street_name = $2
			AND street_number = $3
			AND street_unit = $4
			AND postal_code = $5
			AND city = $6
			AND country_id IS NOT DISTINCT FROM $7
	`
	var n int
	err := s.db.QueryRowContext(ctx, query,
		address.ContactID,
		address.StreetName,
		address.StreetNumber,
		address.StreetUnit,
		address.PostalCode,
		address.City,
		nullInt64(int64(address.CountryID)),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count addresses of contact %d: %w", address.ContactID, err)
	}
	return n, nil
}

// CreateAddress inserts an address.
func (s *PostgresStore) CreateAddress(ctx context.Context, address domain.Address) error {
	query := `
		INSERT INTO address (
			contact_id, location_type_id, street_name, street_number, street_unit,
			street_address, postal_code, city, country_id, is_primary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		address.ContactID,
		address.LocationTypeID,
		address.StreetName,
		address.StreetNumber,
		address.StreetUnit,
		address.StreetAddress,
		address.PostalCode,
		address.City,
		nullInt64(int64(address.CountryID)),
		address.IsPrimary,
	)
	if err != nil {
		return fmt.Errorf("failed to create address for contact %d: %w", address.ContactID, err)
	}
	return nil
}

// CountPhones counts the contact's phones with the given digits.
func (s *PostgresStore) CountPhones(ctx context.Context, contactID int64, phoneNumeric string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM phone WHERE contact_id = $1 AND phone_numeric = $2`,
		contactID, phoneNumeric,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count phones of contact %d: %w", contactID, err)
	}
	return n, nil
}

// CreatePhone inserts a phone number.
func (s *PostgresStore) CreatePhone(ctx context.Context, phone domain.Phone) error {
	query := `
		INSERT INTO phone (contact_id, location_type_id, phone_type_id, phone, phone_numeric)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		phone.ContactID, phone.LocationTypeID, phone.PhoneTypeID, phone.Phone, phone.PhoneNumeric,
	)
	if err != nil {
		return fmt.Errorf("failed to create phone for contact %d: %w", phone.ContactID, err)
	}
	return nil
}

// CountEmails counts the contact's emails equal to email.
func (s *PostgresStore) CountEmails(ctx context.Context, contactID int64, email string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM email WHERE contact_id = $1 AND email = $2`,
		contactID, email,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count emails of contact %d: %w", contactID, err)
	}
	return n, nil
}

// CreateEmail inserts an email address.
func (s *PostgresStore) CreateEmail(ctx context.Context, email domain.Email) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO email (contact_id, location_type_id, email) VALUES ($1, $2, $3)`,
		email.ContactID, email.LocationTypeID, email.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to create email for contact %d: %w", email.ContactID, err)
	}
	return nil
}

// CreateRelationship inserts an active relationship.
func (s *PostgresStore) CreateRelationship(ctx context.Context, rel domain.Relationship) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO relationship (contact_id_a, contact_id_b, relationship_type_id) VALUES ($1, $2, $3)`,
		rel.ContactIDA, rel.ContactIDB, rel.RelationshipTypeID,
	)
	if err != nil {
		return fmt.Errorf("failed to create relationship %d-%d: %w", rel.ContactIDA, rel.ContactIDB, err)
	}
	return nil
}

func displayName(c domain.Contact) string {
	switch c.Type {
	case domain.ContactTypeHousehold:
		return c.HouseholdName
	case domain.ContactTypeOrganization:
		return c.OrganizationName
	default:
		return strings.TrimSpace(c.FirstName + " " + c.LastName)
	}
}
