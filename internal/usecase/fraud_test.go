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

func newFraudDetector(t *testing.T, ctrl *gomock.Controller) (*usecase.FraudDetector, *mock_usecase.MockHostStore, *usecase.ImportResult) {
	t.Helper()
	cfg := testConfig()
	store := mock_usecase.NewMockHostStore(ctrl)
	result := newResult(t, cfg, store)
	return usecase.NewFraudDetector(cfg, store, usecase.NewEntityResolver(store, store), result), store, result
}

func TestFraudDetector_CheckIBANAlreadyUsedForOtherContact(t *testing.T) {
	tests := []struct {
		name    string
		holders []int64
		want    []int64
	}{
		{name: "shared with one other contact", holders: []int64{10, 20}, want: []int64{20}},
		{name: "only the contact itself", holders: []int64{10}, want: nil},
		{name: "nobody", holders: nil, want: nil},
		{name: "duplicates are reported once", holders: []int64{30, 10, 20, 30}, want: []int64{20, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			detector, store, _ := newFraudDetector(t, ctrl)

			store.EXPECT().ContactsWithIBAN(gomock.Any(), testIBAN).Return(tt.holders, nil)
			got, err := detector.CheckIBANAlreadyUsedForOtherContact(context.Background(), testIBAN, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFraudDetector_CreateFraudWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	detector, store, _ := newFraudDetector(t, ctrl)

	mandate := &domain.Mandate{ID: 1, ContactID: 10, Reference: "SR-0001", IBAN: testIBAN, EntityTable: domain.EntityContributionRecur, EntityID: 77}

	store.EXPECT().IdentifyContact(gomock.Any(), "R-1", "recruiter_id").Return(int64(5), nil)
	store.EXPECT().CreateFraudWarning(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a domain.Activity, w domain.FraudWarning) (int64, error) {
			assert.Equal(t, 55, a.TypeID)
			assert.Equal(t, []int64{10}, a.TargetIDs)
			assert.Equal(t, int64(10), w.TargetContactID)
			assert.Equal(t, int64(77), w.ContributionRecurID)
			assert.Zero(t, w.ContributionID)
			assert.Equal(t, []int64{20}, w.OtherContacts)
			assert.Equal(t, "IBAN already used for other contacts 20", w.Message)
			require.NotNil(t, w.RecruiterID)
			assert.Equal(t, int64(5), *w.RecruiterID)
			return 501, nil
		})

	id, err := detector.CreateFraudWarning(context.Background(), mandate, []int64{20}, "R-1")
	require.NoError(t, err)
	assert.Equal(t, int64(501), id)
}

func TestFraudDetector_UnknownRecruiterDoesNotBlockWarning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	detector, store, result := newFraudDetector(t, ctrl)

	mandate := &domain.Mandate{ID: 2, ContactID: 10, Reference: "SR-0002", IBAN: testIBAN, EntityTable: domain.EntityContribution, EntityID: 88}

	store.EXPECT().ContactsWithIBAN(gomock.Any(), testIBAN).Return([]int64{10, 20}, nil)
	store.EXPECT().IdentifyContact(gomock.Any(), "R-404", "recruiter_id").Return(int64(0), domain.ErrNotFound)
	store.EXPECT().CreateFraudWarning(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Activity, w domain.FraudWarning) (int64, error) {
			assert.Nil(t, w.RecruiterID)
			assert.Equal(t, int64(88), w.ContributionID)
			return 502, nil
		})

	detector.Screen(context.Background(), "sr.csv:2", mandate, "R-404")
	assert.Equal(t, domain.SeverityWarn, result.MaxLevel())
}
