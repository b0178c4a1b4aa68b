package usecase

import (
	"context"

	"streetimport/internal/domain"
)

// The usecase layer depends on these host store capabilities, not on a
// concrete implementation. Lookups return domain.ErrNotFound for absence;
// any other error means the store could not answer.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go

// RecordSource reads the rows of one input file.
type RecordSource interface {
	ReadRecords(ctx context.Context, path string) ([]domain.Record, error)
}

// ContactStore creates, updates and finds contacts.
type ContactStore interface {
	CreateContact(ctx context.Context, payload domain.ContactPayload) (*domain.Contact, error)
	UpdateContact(ctx context.Context, update domain.ContactUpdate) error
	GetContact(ctx context.Context, id int64) (*domain.Contact, error)
	IdentifyContact(ctx context.Context, identifier, identifierType string) (int64, error)
}

// DonorIDStore holds the (recruiting organisation, external donor id) to
// contact mapping.
type DonorIDStore interface {
	FindContactByDonorID(ctx context.Context, recruitingOrgID int64, donorID string) (int64, error)
	UpsertDonorID(ctx context.Context, recruitingOrgID int64, donorID string, contactID int64) error
}

// LocationStore manages addresses, phones, emails and relationships.
type LocationStore interface {
	CountryIDByISO(ctx context.Context, iso string) (int, error)
	CountAddresses(ctx context.Context, address domain.Address) (int, error)
	CreateAddress(ctx context.Context, address domain.Address) error
	CountPhones(ctx context.Context, contactID int64, phoneNumeric string) (int, error)
	CreatePhone(ctx context.Context, phone domain.Phone) error
	CountEmails(ctx context.Context, contactID int64, email string) (int, error)
	CreateEmail(ctx context.Context, email domain.Email) error
	CreateRelationship(ctx context.Context, rel domain.Relationship) error
}

// MandateStore submits mandates.
type MandateStore interface {
	CreateMandate(ctx context.Context, spec domain.MandateSpec) (*domain.Mandate, error)
}

// BankingStore manages bank accounts and resolves BICs.
type BankingStore interface {
	LookupBIC(ctx context.Context, iban string) (*domain.BankInfo, error)
	HasBankAccount(ctx context.Context, contactID int64, iban string) (bool, error)
	CreateBankAccount(ctx context.Context, account domain.BankAccount) error
	ContactsWithIBAN(ctx context.Context, iban string) ([]int64, error)
}

// CampaignStore checks campaigns.
type CampaignStore interface {
	CampaignExists(ctx context.Context, id int64) (bool, error)
	CampaignTitle(ctx context.Context, id int64) (string, error)
}

// OptionValueStore resolves option values by label.
type OptionValueStore interface {
	GetOptionValue(ctx context.Context, group, label string) (string, error)
	GetOrCreateOptionValue(ctx context.Context, group, label string) (string, error)
}

// ActivityStore records activities and answers the historical queries.
type ActivityStore interface {
	CreateActivity(ctx context.Context, activity domain.Activity, data *domain.StreetRecruitmentData) (int64, error)
	LatestImportActivityType(ctx context.Context, contactID int64, typeIDs []int) (int, error)
	StreetRecruitmentOrgFlag(ctx context.Context, mandateReference string, streetRecruitmentTypeID int) (bool, error)
	CreateFraudWarning(ctx context.Context, activity domain.Activity, warning domain.FraudWarning) (int64, error)
}

// HostStore bundles every capability the importer needs.
type HostStore interface {
	ContactStore
	DonorIDStore
	LocationStore
	MandateStore
	BankingStore
	CampaignStore
	OptionValueStore
	ActivityStore
}
