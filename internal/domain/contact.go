package domain

import "time"

// ContactType is the kind of contact held by the host store.
type ContactType string

const (
	ContactTypeIndividual   ContactType = "Individual"
	ContactTypeHousehold    ContactType = "Household"
	ContactTypeOrganization ContactType = "Organization"
)

// Contact is the host store's view of a contact.
type Contact struct {
	ID               int64       `json:"id"`
	Type             ContactType `json:"contact_type"`
	SubType          string      `json:"contact_sub_type,omitempty"`
	FirstName        string      `json:"first_name,omitempty"`
	LastName         string      `json:"last_name,omitempty"`
	HouseholdName    string      `json:"household_name,omitempty"`
	OrganizationName string      `json:"organization_name,omitempty"`
	DisplayName      string      `json:"display_name"`
	BirthDate        *time.Time  `json:"birth_date,omitempty"`
	PrefixID         int         `json:"prefix_id,omitempty"`
	GenderID         int         `json:"gender_id,omitempty"`
	JobTitle         string      `json:"job_title,omitempty"`
	EmployerID       int64       `json:"employer_id,omitempty"`
}

// ContactPayload is the data needed to create a contact. It is implemented
// by exactly one type per ContactType.
type ContactPayload interface {
	ContactType() ContactType
	isContactPayload()
}

// IndividualPayload creates an Individual.
type IndividualPayload struct {
	SubType     string
	FirstName   string
	LastName    string
	PrefixID    int
	GenderID    int
	BirthDate   *time.Time
	RecruiterID string // registered under the recruiter identifier type when set
}

// HouseholdPayload creates a Household.
type HouseholdPayload struct {
	HouseholdName string
}

// OrganizationPayload creates an Organization.
type OrganizationPayload struct {
	OrganizationName   string
	OrganizationNumber string
}

func (IndividualPayload) ContactType() ContactType   { return ContactTypeIndividual }
func (HouseholdPayload) ContactType() ContactType    { return ContactTypeHousehold }
func (OrganizationPayload) ContactType() ContactType { return ContactTypeOrganization }

func (IndividualPayload) isContactPayload()   {}
func (HouseholdPayload) isContactPayload()    {}
func (OrganizationPayload) isContactPayload() {}

// ContactUpdate carries only the fields that changed. Nil means unchanged.
type ContactUpdate struct {
	ID         int64
	FirstName  *string
	LastName   *string
	BirthDate  *time.Time
	PrefixID   *int
	GenderID   *int
	JobTitle   *string
	EmployerID *int64
}

// IsEmpty reports whether the update changes nothing.
func (u ContactUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.BirthDate == nil &&
		u.PrefixID == nil && u.GenderID == nil && u.JobTitle == nil && u.EmployerID == nil
}

// Address is a postal address attached to a contact.
type Address struct {
	ContactID      int64  `json:"contact_id"`
	LocationTypeID int    `json:"location_type_id"`
	StreetName     string `json:"street_name"`
	StreetNumber   int    `json:"street_number"`
	StreetUnit     string `json:"street_unit"`
	StreetAddress  string `json:"street_address"`
	PostalCode     string `json:"postal_code"`
	City           string `json:"city"`
	CountryID      int    `json:"country_id"`
	IsPrimary      bool   `json:"is_primary"`
}

// Phone is a phone number attached to a contact.
type Phone struct {
	ContactID      int64  `json:"contact_id"`
	LocationTypeID int    `json:"location_type_id"`
	PhoneTypeID    int    `json:"phone_type_id"`
	Phone          string `json:"phone"`
	PhoneNumeric   string `json:"phone_numeric"`
}

// Email is an email address attached to a contact.
type Email struct {
	ContactID      int64  `json:"contact_id"`
	LocationTypeID int    `json:"location_type_id"`
	Email          string `json:"email"`
}

// Relationship links contact A to contact B.
type Relationship struct {
	ContactIDA         int64 `json:"contact_id_a"`
	ContactIDB         int64 `json:"contact_id_b"`
	RelationshipTypeID int   `json:"relationship_type_id"`
}

// Donor is the result of donor reconciliation. MandateContactID is the
// financial counterpart: the donor itself or the organisation created for it.
type Donor struct {
	Contact          Contact
	MandateContactID int64
	Created          bool
	Organization     *Contact
}
