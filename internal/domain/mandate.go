package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MandateType distinguishes recurring from one-off direct debits.
type MandateType string

const (
	MandateTypeRecurring MandateType = "RCUR"
	MandateTypeOneOff    MandateType = "OOFF"
)

// Frequency is what a configured frequency unit label maps to.
type Frequency struct {
	Type     MandateType `yaml:"type" json:"type"`
	Unit     string      `yaml:"unit" json:"frequency_unit"`
	Interval int         `yaml:"interval" json:"frequency_interval"`
}

// MandateSpec is a validated direct debit mandate ready to be submitted to
// the host store.
type MandateSpec struct {
	ContactID       int64           `json:"contact_id"`
	Reference       string          `json:"reference"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	IBAN            string          `json:"iban"`
	BIC             string          `json:"bic"`
	BankName        string          `json:"bank_name,omitempty"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         *time.Time      `json:"end_date,omitempty"`
	SignatureDate   time.Time       `json:"date"`
	ValidationDate  time.Time       `json:"validation_date"`
	CreationDate    time.Time       `json:"creation_date"`
	Frequency       Frequency       `json:"frequency"`
	CycleDay        int             `json:"cycle_day"`
	FinancialTypeID int             `json:"financial_type_id"`
	CampaignID      int64           `json:"campaign_id,omitempty"`
	Source          string          `json:"source"`
}

// Mandate is a mandate as stored by the host. EntityTable names what the
// mandate is attached to (a contribution or a recurring contribution).
type Mandate struct {
	ID          int64  `json:"id"`
	ContactID   int64  `json:"contact_id"`
	Reference   string `json:"reference"`
	IBAN        string `json:"iban"`
	EntityTable string `json:"entity_table"`
	EntityID    int64  `json:"entity_id"`
}

const (
	EntityContribution      = "civicrm_contribution"
	EntityContributionRecur = "civicrm_contribution_recur"
)

// BankInfo is the result of an IBAN to BIC lookup.
type BankInfo struct {
	BIC   string `json:"bic"`
	Title string `json:"title"`
}

// BankAccount is a bank account owned by a contact, referenced by IBAN.
type BankAccount struct {
	ContactID   int64     `json:"contact_id"`
	IBAN        string    `json:"iban"`
	BIC         string    `json:"bic"`
	Country     string    `json:"country"`
	BankName    string    `json:"bank_name,omitempty"`
	Source      string    `json:"source"`
	Description string    `json:"description"`
	CreatedDate time.Time `json:"created_date"`
}

// FraudWarning flags an IBAN that is already used by other contacts.
type FraudWarning struct {
	TargetContactID     int64   `json:"target_id"`
	ContributionID      int64   `json:"contribution_id,omitempty"`
	ContributionRecurID int64   `json:"contribution_recur_id,omitempty"`
	RecruiterID         *int64  `json:"recruiter_id,omitempty"`
	MandateReference    string  `json:"mandate_reference"`
	Message             string  `json:"warning_message"`
	OtherContacts       []int64 `json:"other_contacts"`
}
