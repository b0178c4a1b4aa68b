package domain

import "time"

// ImportType is the kind of street import activity a record introduces.
type ImportType string

const (
	ImportStreetRecruitment ImportType = "StreetRecruitment"
	ImportWelcomeCall       ImportType = "WelcomeCall"
)

// Loading type names as configured.
const (
	LoadingStreetRecruitment = "Street Recruitment"
	LoadingWelcomeCall       = "Welcome Call"
)

// Activity is an activity recorded in the host store.
type Activity struct {
	TypeID      int       `json:"activity_type_id"`
	StatusID    int       `json:"status_id"`
	Subject     string    `json:"subject"`
	Details     string    `json:"details,omitempty"`
	DateTime    time.Time `json:"activity_date_time"`
	SourceID    int64     `json:"source_contact_id"`
	TargetIDs   []int64   `json:"target_contact_id,omitempty"`
	AssigneeIDs []int64   `json:"assignee_contact_id,omitempty"`
	CampaignID  int64     `json:"campaign_id,omitempty"`
}

// StreetRecruitmentData is the custom data stored with a street import activity.
type StreetRecruitmentData struct {
	MandateReference string `json:"new_sdd_mandate,omitempty"`
	NewOrgMandate    bool   `json:"new_org_mandate"`
	AreasOfInterest  string `json:"areas_interest,omitempty"`
	RecruiterID      int64  `json:"recruiter_id,omitempty"`
	CompanyID        int64  `json:"company_id,omitempty"`
}

// ValueSeparator delimits multi-valued custom fields in the host store.
const ValueSeparator = "\x01"
