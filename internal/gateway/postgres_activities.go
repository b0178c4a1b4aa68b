package gateway

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"streetimport/internal/domain"
)

// activity_contact record types
const (
	recordAssignee = 1
	recordSource   = 2
	recordTarget   = 3
)

// CreateActivity inserts an activity with its contacts and, when data is
// set, its street recruitment fields.
func (s *PostgresStore) CreateActivity(ctx context.Context, activity domain.Activity, data *domain.StreetRecruitmentData) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id, err := insertActivity(ctx, tx, activity)
	if err != nil {
		return 0, err
	}

	if data != nil {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO activity_street_recruitment (
				entity_id, new_sdd_mandate, new_org_mandate, areas_interest, recruiter_id, company_id
			) VALUES ($1, $2, $3, $4, $5, $6)
		`,
			id,
			data.MandateReference,
			data.NewOrgMandate,
			data.AreasOfInterest,
			nullInt64(data.RecruiterID),
			nullInt64(data.CompanyID),
		)
		if err != nil {
			return 0, fmt.Errorf("failed to store street recruitment data of activity %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit activity: %w", err)
	}

	s.logger.Debug("activity created", zap.Int64("activity_id", id), zap.Int("activity_type_id", activity.TypeID))
	return id, nil
}

// CreateFraudWarning inserts the warning activity and its fraud fields.
func (s *PostgresStore) CreateFraudWarning(ctx context.Context, activity domain.Activity, warning domain.FraudWarning) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id, err := insertActivity(ctx, tx, activity)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO activity_fraud_warning (
			entity_id, contribution_id, contribution_recur_id, recruiter_id,
			mandate_reference, warning_message, other_contacts
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		id,
		nullInt64(warning.ContributionID),
		nullInt64(warning.ContributionRecurID),
		warning.RecruiterID,
		warning.MandateReference,
		warning.Message,
		pq.Array(warning.OtherContacts),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to store fraud warning of activity %d: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit fraud warning: %w", err)
	}

	s.logger.Warn("fraud warning created",
		zap.Int64("activity_id", id),
		zap.String("mandate_reference", warning.MandateReference),
		zap.Int64s("other_contacts", warning.OtherContacts),
	)
	return id, nil
}

func insertActivity(ctx context.Context, tx *sql.Tx, activity domain.Activity) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `
		INSERT INTO activity (
			activity_type_id, status_id, subject, details, activity_date_time, campaign_id
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		activity.TypeID,
		activity.StatusID,
		activity.Subject,
		activity.Details,
		activity.DateTime,
		nullInt64(activity.CampaignID),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert activity: %w", err)
	}

	link := func(contactID int64, recordType int) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO activity_contact (activity_id, contact_id, record_type_id) VALUES ($1, $2, $3)
			 ON CONFLICT DO NOTHING`,
			id, contactID, recordType,
		)
		if err != nil {
			return fmt.Errorf("failed to link contact %d to activity %d: %w", contactID, id, err)
		}
		return nil
	}

	if activity.SourceID != 0 {
		if err := link(activity.SourceID, recordSource); err != nil {
			return 0, err
		}
	}
	for _, target := range activity.TargetIDs {
		if err := link(target, recordTarget); err != nil {
			return 0, err
		}
	}
	for _, assignee := range activity.AssigneeIDs {
		if err := link(assignee, recordAssignee); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// LatestImportActivityType returns the type of the most recent non deleted
// activity among typeIDs targeting the contact.
func (s *PostgresStore) LatestImportActivityType(ctx context.Context, contactID int64, typeIDs []int) (int, error) {
	ids := make([]int64, len(typeIDs))
	for i, t := range typeIDs {
		ids[i] = int64(t)
	}

	query := `
		SELECT a.activity_type_id
		FROM activity a
		JOIN activity_contact ac ON ac.activity_id = a.id
		WHERE ac.contact_id = $1
			AND ac.record_type_id = $2
			AND a.activity_type_id = ANY($3)
			AND NOT a.is_deleted
			AND NOT a.is_test
		ORDER BY COALESCE(a.created_date, a.activity_date_time) DESC, a.id DESC
		LIMIT 1
	`
	var typeID int
	err := s.db.QueryRowContext(ctx, query, contactID, recordTarget, pq.Int64Array(ids)).Scan(&typeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("failed to get latest activity of contact %d: %w", contactID, err)
	}
	return typeID, nil
}

// StreetRecruitmentOrgFlag returns whether the street recruitment that
// introduced the mandate reference mentioned a company.
func (s *PostgresStore) StreetRecruitmentOrgFlag(ctx context.Context, mandateReference string, streetRecruitmentTypeID int) (bool, error) {
	query := `
		SELECT sr.new_org_mandate
		FROM activity_street_recruitment sr
		JOIN activity a ON a.id = sr.entity_id
		WHERE sr.new_sdd_mandate = $1
			AND a.activity_type_id = $2
			AND NOT a.is_deleted
		ORDER BY a.activity_date_time DESC, a.id DESC
		LIMIT 1
	`
	var flag bool
	err := s.db.QueryRowContext(ctx, query, mandateReference, streetRecruitmentTypeID).Scan(&flag)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("failed to get street recruitment of mandate %s: %w", mandateReference, err)
	}
	return flag, nil
}
