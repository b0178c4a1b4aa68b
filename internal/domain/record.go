package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Column names used by the street recruitment and welcome call files.
const (
	ColRecruitingOrgID  = "Recruiting organization ID"
	ColRecruiterID      = "Recruiter ID"
	ColRecruiterFirst   = "Recruiter First Name"
	ColRecruiterLast    = "Recruiter Last Name"
	ColRecruiterPrefix  = "Recruiter Prefix"
	ColDonorID          = "DonorID"
	ColLoadingType      = "Loading type"
	ColPrefix           = "Prefix"
	ColFirstName        = "First Name"
	ColLastName         = "Last Name"
	ColBirthDate        = "Birth date"
	ColStreetName       = "Street Name"
	ColStreetNumber     = "Street Number"
	ColStreetUnit       = "Street Unit"
	ColPostalCode       = "Postal code"
	ColCity             = "City"
	ColCountry          = "Country"
	ColTelephone1       = "Telephone1"
	ColTelephone2       = "Telephone2"
	ColMobile1          = "Mobile1"
	ColMobile2          = "Mobile2"
	ColEmail            = "Email"
	ColOrganizationFlag = "Organization Yes/No"
	ColNotes            = "Notes"
	ColAmount           = "Amount"
	ColMandateRef       = "Mandate Reference"
	ColFrequencyUnit    = "Frequency Unit"
	ColFrequencyInt     = "Frequency Interval"
	ColIBAN             = "IBAN"
	ColBIC              = "Bic"
	ColBankName         = "Bank Name"
	ColStartDate        = "Start Date"
	ColEndDate          = "End Date"
	ColRecruitmentDate  = "Recruitment Date"
	ColCampaignID       = "Campaign ID"
	ColAreasOfInterest  = "Areas of Interest"
)

// Record is one input row. Values are kept exactly as read; Columns keeps
// the header order of the source file.
type Record struct {
	Line    int               `json:"line"`
	Source  string            `json:"source"`
	Columns []string          `json:"-"`
	Values  map[string]string `json:"values"`
}

// NewRecord builds a record from a header row and a data row. Missing
// trailing cells are treated as empty.
func NewRecord(source string, line int, header, row []string) Record {
	values := make(map[string]string, len(header))
	for i, col := range header {
		if i < len(row) {
			values[col] = row[i]
		} else {
			values[col] = ""
		}
	}
	return Record{Line: line, Source: source, Columns: header, Values: values}
}

// ID identifies the record in logs and outcomes.
func (r Record) ID() string {
	return fmt.Sprintf("%s:%d", r.Source, r.Line)
}

// Has reports whether the column is present in the record at all.
func (r Record) Has(col string) bool {
	_, ok := r.Values[col]
	return ok
}

// Raw returns the untrimmed value of col, or "" when absent.
func (r Record) Raw(col string) string {
	return r.Values[col]
}

// Get returns the trimmed value of col, or "" when absent.
func (r Record) Get(col string) string {
	return strings.TrimSpace(r.Values[col])
}

// Value returns the trimmed value of col, or fallback when it is absent or empty.
func (r Record) Value(col, fallback string) string {
	if v := r.Get(col); v != "" {
		return v
	}
	return fallback
}

// Int returns the leading integer of col, 0 when there is none.
func (r Record) Int(col string) int {
	v := r.Get(col)
	end := 0
	for end < len(v) && (v[end] >= '0' && v[end] <= '9' || end == 0 && v[end] == '-') {
		end++
	}
	n, err := strconv.Atoi(v[:end])
	if err != nil {
		return 0
	}
	return n
}

// Int64 is Int widened to the identifier type used by the host store.
func (r Record) Int64(col string) int64 {
	return int64(r.Int(col))
}
