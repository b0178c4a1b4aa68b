package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetimport/internal/domain"
	"streetimport/internal/usecase"
	mock_usecase "streetimport/internal/usecase/mocks"
)

func TestConsistencyChecker_DonorAlreadyHasIncomingActivity(t *testing.T) {
	const (
		streetRecruitment = 52
		welcomeCall       = 53
	)
	tests := []struct {
		name      string
		latest    int
		latestErr error
		incoming  domain.ImportType
		wantValid bool
	}{
		{name: "recruitment after welcome call", latest: welcomeCall, incoming: domain.ImportStreetRecruitment},
		{name: "welcome call without history", latestErr: domain.ErrNotFound, incoming: domain.ImportWelcomeCall},
		{name: "welcome call after welcome call", latest: welcomeCall, incoming: domain.ImportWelcomeCall},
		{name: "welcome call after recruitment", latest: streetRecruitment, incoming: domain.ImportWelcomeCall, wantValid: true},
		{name: "recruitment without history", latestErr: domain.ErrNotFound, incoming: domain.ImportStreetRecruitment, wantValid: true},
		{name: "recruitment after recruitment", latest: streetRecruitment, incoming: domain.ImportStreetRecruitment, wantValid: true},
		{name: "unrecognised type counts as no history", latest: 99, incoming: domain.ImportWelcomeCall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			activities := mock_usecase.NewMockActivityStore(ctrl)
			activities.EXPECT().
				LatestImportActivityType(gomock.Any(), int64(100), []int{streetRecruitment, welcomeCall}).
				Return(tt.latest, tt.latestErr)

			checker := usecase.NewConsistencyChecker(testConfig(), activities)
			msg, err := checker.DonorAlreadyHasIncomingActivity(context.Background(), &domain.Contact{ID: 100}, tt.incoming)
			require.NoError(t, err)
			if tt.wantValid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestConsistencyChecker_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activities := mock_usecase.NewMockActivityStore(ctrl)
	activities.EXPECT().LatestImportActivityType(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, assert.AnError)

	checker := usecase.NewConsistencyChecker(testConfig(), activities)
	_, err := checker.DonorAlreadyHasIncomingActivity(context.Background(), &domain.Contact{ID: 100}, domain.ImportWelcomeCall)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestConsistencyChecker_CheckOrganizationPersonConsistency(t *testing.T) {
	tests := []struct {
		name      string
		record    domain.Record
		stored    bool
		storedErr error
		noLookup  bool
		wantValid bool
	}{
		{
			name:      "no mandate reference",
			record:    newRecord(2, domain.ColOrganizationFlag, "Yes"),
			noLookup:  true,
			wantValid: true,
		},
		{
			name:      "no street recruitment for the mandate",
			record:    newRecord(2, domain.ColMandateRef, "SR-1", domain.ColOrganizationFlag, "Yes"),
			storedErr: domain.ErrNotFound,
			wantValid: true,
		},
		{
			name:   "company added by welcome call",
			record: newRecord(2, domain.ColMandateRef, "SR-1", domain.ColOrganizationFlag, "Yes"),
			stored: false,
		},
		{
			name:   "company dropped by welcome call",
			record: newRecord(2, domain.ColMandateRef, "SR-1", domain.ColOrganizationFlag, "No"),
			stored: true,
		},
		{
			name:      "both mention a company",
			record:    newRecord(2, domain.ColMandateRef, "SR-1", domain.ColOrganizationFlag, "Ja"),
			stored:    true,
			wantValid: true,
		},
		{
			name:      "neither mentions a company",
			record:    newRecord(2, domain.ColMandateRef, "SR-1"),
			stored:    false,
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			activities := mock_usecase.NewMockActivityStore(ctrl)
			if !tt.noLookup {
				activities.EXPECT().StreetRecruitmentOrgFlag(gomock.Any(), "SR-1", 52).Return(tt.stored, tt.storedErr)
			}

			checker := usecase.NewConsistencyChecker(testConfig(), activities)
			got, err := checker.CheckOrganizationPersonConsistency(context.Background(), tt.record)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, got.Valid)
			if !tt.wantValid {
				assert.Contains(t, got.Message, "Please check and fix manually")
			}
		})
	}
}
