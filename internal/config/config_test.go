package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetimport/internal/domain"
)

const validYAML = `
database:
  dsn: ${TEST_STREETIMPORT_DSN}
import:
  admin_contact_id: 1
  offset_days: 7
  household_prefixes: ["Familie"]
  prefixes:
    Mevrouw: { prefix_id: 1, gender_id: 1 }
  loading_types:
    1: Street Recruitment
    2: Welcome Call
  frequency_units:
    Maand: { type: RCUR, unit: month, interval: 1 }
  financial_types:
    RCUR: 3
  default_country_id: 1020
  locations: { default: 1, other: 4, phone_type: 1, mobile_type: 2 }
  activity_types: { street_recruitment: 52, welcome_call: 53, import_error: 54, fraud_warning: 55 }
  recruiter: { relationship_type_id: 12 }
`

func TestLoad(t *testing.T) {
	t.Setenv("TEST_STREETIMPORT_DSN", "postgres://u:p@db:5432/crm")

	path := filepath.Join(t.TempDir(), "streetimport.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/crm", cfg.Database.DSN)
	assert.Equal(t, int64(1), cfg.Import.AdminContactID)
	assert.Equal(t, 7, cfg.Import.OffsetDays)
	assert.Equal(t, "Street Recruitment", cfg.Import.LoadingTypes[1])
	assert.Equal(t, PrefixRule{PrefixID: 1, GenderID: 1}, cfg.Import.Prefixes["Mevrouw"])

	// defaults
	assert.Equal(t, "EUR", cfg.Import.Currency)
	assert.Equal(t, ";", cfg.Input.Delimiter)
	assert.Equal(t, "recruiter_id", cfg.Import.Recruiter.IdentifierType)
	assert.NotEmpty(t, cfg.Import.AcceptedYesValues)
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("import: [unclosed"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing admin contact",
			yaml:    "import:\n  offset_days: 1\n",
			wantErr: "admin_contact_id is required",
		},
		{
			name: "frequency unit without financial type",
			yaml: `
import:
  admin_contact_id: 1
  frequency_units:
    Jaar: { type: OOFF, unit: year, interval: 1 }
`,
			wantErr: "financial_types has no entry for OOFF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Lookups(t *testing.T) {
	cfg, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	assert.True(t, cfg.IsYes(" Yes "))
	assert.False(t, cfg.IsYes("No"))
	assert.True(t, cfg.IsHouseholdPrefix("familie"))
	assert.False(t, cfg.IsHouseholdPrefix("Mevrouw"))

	f, ok := cfg.Frequency("maand")
	assert.True(t, ok)
	assert.Equal(t, domain.Frequency{Type: domain.MandateTypeRecurring, Unit: "month", Interval: 1}, f)
	_, ok = cfg.Frequency("weekly")
	assert.False(t, ok)

	assert.Equal(t, 3, cfg.FinancialTypeID(domain.MandateTypeRecurring))

	name, ok := cfg.LoadingType(2)
	assert.True(t, ok)
	assert.Equal(t, domain.LoadingWelcomeCall, name)
}
