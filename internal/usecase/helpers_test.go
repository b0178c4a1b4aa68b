package usecase_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"streetimport/internal/config"
	"streetimport/internal/domain"
	"streetimport/internal/usecase"
	mock_usecase "streetimport/internal/usecase/mocks"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func testConfig() *config.Config {
	return &config.Config{
		Import: config.ImportConfig{
			AdminContactID:    1,
			OffsetDays:        7,
			Currency:          "EUR",
			Source:            domain.LoadingStreetRecruitment,
			AcceptedYesValues: []string{"Yes", "yes", "Y", "1", "Ja"},
			HouseholdPrefixes: []string{"Familie"},
			Prefixes: map[string]config.PrefixRule{
				"Mevrouw":  {PrefixID: 1, GenderID: 1},
				"Mijnheer": {PrefixID: 3, GenderID: 2},
			},
			LoadingTypes: map[int]string{
				1: domain.LoadingStreetRecruitment,
				2: domain.LoadingWelcomeCall,
			},
			FrequencyUnits: map[string]domain.Frequency{
				"maand":    {Type: domain.MandateTypeRecurring, Unit: "month", Interval: 1},
				"eenmalig": {Type: domain.MandateTypeOneOff, Unit: "month"},
			},
			FinancialTypes: map[domain.MandateType]int{
				domain.MandateTypeRecurring: 3,
				domain.MandateTypeOneOff:    1,
			},
			DefaultCountryID: 1020,
			Locations:        config.LocationTypes{Default: 1, Other: 4, PhoneType: 1, MobileType: 2},
			ActivityTypes: config.ActivityTypes{
				StreetRecruitment: 52,
				WelcomeCall:       53,
				ImportError:       54,
				FraudWarning:      55,
			},
			ActivityStatuses: config.ActivityStatuses{Completed: 2, ImportError: 1, Scheduled: 1},
			Recruiter: config.RecruiterConfig{
				ContactSubType:     "Werver",
				RelationshipTypeID: 12,
				IdentifierType:     "recruiter_id",
			},
			OptionGroups:      config.OptionGroups{AreasOfInterest: "areas_interest"},
			FakeEmailPatterns: []string{`^(no|geen)[-_.]?e?-?mail@`},
		},
	}
}

// newRecord builds a record from column/value pairs.
func newRecord(line int, pairs ...string) domain.Record {
	var header, row []string
	for i := 0; i+1 < len(pairs); i += 2 {
		header = append(header, pairs[i])
		row = append(row, pairs[i+1])
	}
	return domain.NewRecord("sr.csv", line, header, row)
}

func newResult(t *testing.T, cfg *config.Config, store usecase.ActivityStore) *usecase.ImportResult {
	t.Helper()
	return usecase.NewImportResult(cfg, store, zap.NewNop())
}

// expectErrorActivities accepts any number of error activities.
func expectErrorActivities(store *mock_usecase.MockHostStore) *gomock.Call {
	return store.EXPECT().
		CreateActivity(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(int64(900), nil).
		AnyTimes()
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return d
}
