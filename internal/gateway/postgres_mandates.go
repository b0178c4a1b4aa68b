package gateway

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"streetimport/internal/domain"
)

// CreateMandate inserts the contribution the mandate collects for and the
// mandate itself in one transaction. Recurring mandates get a recurring
// contribution, one-off mandates a single contribution.
func (s *PostgresStore) CreateMandate(ctx context.Context, spec domain.MandateSpec) (*domain.Mandate, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	mandate := domain.Mandate{ContactID: spec.ContactID, Reference: spec.Reference, IBAN: spec.IBAN}
	status := "FRST"
	if spec.Frequency.Type == domain.MandateTypeOneOff {
		status = "OOFF"
		mandate.EntityTable = domain.EntityContribution
		err = tx.QueryRowContext(ctx, `
			INSERT INTO contribution (
				contact_id, total_amount, currency, receive_date, financial_type_id, campaign_id
			) VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`,
			spec.ContactID,
			spec.Amount,
			spec.Currency,
			spec.StartDate,
			spec.FinancialTypeID,
			nullInt64(spec.CampaignID),
		).Scan(&mandate.EntityID)
	} else {
		mandate.EntityTable = domain.EntityContributionRecur
		err = tx.QueryRowContext(ctx, `
			INSERT INTO contribution_recur (
				contact_id, amount, currency, frequency_unit, frequency_interval,
				start_date, end_date, cycle_day, financial_type_id, campaign_id
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`,
			spec.ContactID,
			spec.Amount,
			spec.Currency,
			spec.Frequency.Unit,
			spec.Frequency.Interval,
			spec.StartDate,
			spec.EndDate,
			spec.CycleDay,
			spec.FinancialTypeID,
			nullInt64(spec.CampaignID),
		).Scan(&mandate.EntityID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s for mandate %s: %w", mandate.EntityTable, spec.Reference, err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO sdd_mandate (
			reference, contact_id, iban, bic, bank_name, type, status, source,
			date, validation_date, creation_date, entity_table, entity_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`,
		spec.Reference,
		spec.ContactID,
		spec.IBAN,
		spec.BIC,
		spec.BankName,
		string(spec.Frequency.Type),
		status,
		spec.Source,
		spec.SignatureDate,
		spec.ValidationDate,
		spec.CreationDate,
		mandate.EntityTable,
		mandate.EntityID,
	).Scan(&mandate.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert mandate %s: %w", spec.Reference, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit mandate %s: %w", spec.Reference, err)
	}

	s.logger.Debug("mandate created",
		zap.Int64("mandate_id", mandate.ID),
		zap.String("reference", mandate.Reference),
		zap.String("entity_table", mandate.EntityTable),
	)
	return &mandate, nil
}

// bankCodeRanges locates the national bank code inside an IBAN.
var bankCodeRanges = map[string][2]int{
	"BE": {4, 7},
	"NL": {4, 8},
	"DE": {4, 12},
	"FR": {4, 9},
	"LU": {4, 7},
}

// LookupBIC resolves the BIC of the bank an IBAN belongs to.
func (s *PostgresStore) LookupBIC(ctx context.Context, iban string) (*domain.BankInfo, error) {
	iban = strings.ToUpper(iban)
	if len(iban) < 4 {
		return nil, domain.ErrNotFound
	}
	country := iban[:2]
	r, ok := bankCodeRanges[country]
	if !ok || len(iban) < r[1] {
		return nil, domain.ErrNotFound
	}

	query := `
		SELECT bic, title
		FROM bank_directory
		WHERE country = $1 AND bank_code = $2
	`
	var info domain.BankInfo
	err := s.db.QueryRowContext(ctx, query, country, iban[r[0]:r[1]]).Scan(&info.BIC, &info.Title)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up BIC for %s: %w", country, err)
	}
	return &info, nil
}

// HasBankAccount reports whether the contact already owns the IBAN.
func (s *PostgresStore) HasBankAccount(ctx context.Context, contactID int64, iban string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM bank_account WHERE contact_id = $1 AND iban = $2)`,
		contactID, iban,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check bank accounts of contact %d: %w", contactID, err)
	}
	return exists, nil
}

// CreateBankAccount inserts a bank account.
func (s *PostgresStore) CreateBankAccount(ctx context.Context, account domain.BankAccount) error {
	query := `
		INSERT INTO bank_account (
			contact_id, iban, bic, country, bank_name, source, description, created_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		account.ContactID,
		account.IBAN,
		account.BIC,
		account.Country,
		account.BankName,
		account.Source,
		account.Description,
		account.CreatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create bank account for contact %d: %w", account.ContactID, err)
	}
	return nil
}

// ContactsWithIBAN lists every contact holding a mandate or a bank account
// for the IBAN.
func (s *PostgresStore) ContactsWithIBAN(ctx context.Context, iban string) ([]int64, error) {
	query := `
		SELECT contact_id FROM sdd_mandate WHERE iban = $1
		UNION
		SELECT contact_id FROM bank_account WHERE iban = $1
		ORDER BY 1
	`
	rows, err := s.db.QueryContext(ctx, query, iban)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts with IBAN: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan contact id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CampaignExists reports whether the campaign id is known.
func (s *PostgresStore) CampaignExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM campaign WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check campaign %d: %w", id, err)
	}
	return exists, nil
}

// CampaignTitle loads the title of a campaign.
func (s *PostgresStore) CampaignTitle(ctx context.Context, id int64) (string, error) {
	var title string
	err := s.db.QueryRowContext(ctx, `SELECT title FROM campaign WHERE id = $1`, id).Scan(&title)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to get campaign %d: %w", id, err)
	}
	return title, nil
}

// GetOptionValue resolves a label of an option group, ignoring case.
func (s *PostgresStore) GetOptionValue(ctx context.Context, group, label string) (string, error) {
	return getOptionValue(ctx, s.db, group, label)
}

// GetOrCreateOptionValue resolves a label, adding it to the group with the
// next free value when it does not exist yet.
func (s *PostgresStore) GetOrCreateOptionValue(ctx context.Context, group, label string) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	value, err := getOptionValue(ctx, tx, group, label)
	if err == nil {
		return value, nil
	}
	if err != domain.ErrNotFound {
		return "", err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO option_value (option_group, label, value)
		SELECT $1, $2, (COUNT(*) + 1)::text FROM option_value WHERE option_group = $1
		RETURNING value
	`, group, label).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("failed to add %q to option group %s: %w", label, group, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit option value: %w", err)
	}

	s.logger.Info("option value created",
		zap.String("option_group", group),
		zap.String("label", label),
		zap.String("value", value),
	)
	return value, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getOptionValue(ctx context.Context, q queryRower, group, label string) (string, error) {
	query := `
		SELECT value
		FROM option_value
		WHERE option_group = $1 AND lower(label) = lower($2)
		ORDER BY value
		LIMIT 1
	`
	var value string
	err := q.QueryRowContext(ctx, query, group, label).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("failed to get option value %q of %s: %w", label, group, err)
	}
	return value, nil
}
