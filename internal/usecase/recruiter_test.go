package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetimport/internal/domain"
	"streetimport/internal/usecase"
	mock_usecase "streetimport/internal/usecase/mocks"
)

func newRecruiterProcessor(t *testing.T, ctrl *gomock.Controller) (*usecase.RecruiterProcessor, *mock_usecase.MockHostStore, *usecase.ImportResult) {
	t.Helper()
	cfg := testConfig()
	store := mock_usecase.NewMockHostStore(ctrl)
	result := newResult(t, cfg, store)
	return usecase.NewRecruiterProcessor(cfg, store, usecase.NewEntityResolver(store, store), result), store, result
}

func TestRecruiterProcessor_RecruitingOrganisation(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p, store, _ := newRecruiterProcessor(t, ctrl)

		org := &domain.Contact{ID: 7, Type: domain.ContactTypeOrganization}
		store.EXPECT().GetContact(gomock.Any(), int64(7)).Return(org, nil)

		got, err := p.RecruitingOrganisation(context.Background(), newRecord(2, domain.ColRecruitingOrgID, "7"))
		require.NoError(t, err)
		assert.Equal(t, org, got)
	})

	t.Run("missing id aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p, store, result := newRecruiterProcessor(t, ctrl)
		expectErrorActivities(store)

		_, err := p.RecruitingOrganisation(context.Background(), newRecord(2, domain.ColRecruitingOrgID, ""))
		assert.True(t, errors.Is(err, usecase.ErrAborted))
		assert.Equal(t, domain.SeverityFatal, result.MaxLevel())
	})

	t.Run("unknown organisation aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p, store, _ := newRecruiterProcessor(t, ctrl)
		store.EXPECT().GetContact(gomock.Any(), int64(8)).Return(nil, domain.ErrNotFound)
		expectErrorActivities(store)

		_, err := p.RecruitingOrganisation(context.Background(), newRecord(2, domain.ColRecruitingOrgID, "8"))
		assert.True(t, errors.Is(err, usecase.ErrAborted))
	})
}

func TestRecruiterProcessor_ProcessRecruiter(t *testing.T) {
	org := &domain.Contact{ID: 7, Type: domain.ContactTypeOrganization, OrganizationName: "Streetwise"}

	t.Run("known recruiter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p, store, _ := newRecruiterProcessor(t, ctrl)

		store.EXPECT().IdentifyContact(gomock.Any(), "R-1", "recruiter_id").Return(int64(15), nil)
		store.EXPECT().GetContact(gomock.Any(), int64(15)).Return(&domain.Contact{ID: 15}, nil)
		store.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Times(0)

		got, err := p.ProcessRecruiter(context.Background(), newRecord(2, domain.ColRecruiterID, "R-1"), org)
		require.NoError(t, err)
		assert.Equal(t, int64(15), got.ID)
	})

	t.Run("new recruiter with names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p, store, _ := newRecruiterProcessor(t, ctrl)

		rec := newRecord(2,
			domain.ColRecruiterID, "R-2",
			domain.ColRecruiterFirst, "Els",
			domain.ColRecruiterLast, "Wouters",
			domain.ColRecruiterPrefix, "mevrouw",
		)
		store.EXPECT().IdentifyContact(gomock.Any(), "R-2", "recruiter_id").Return(int64(0), domain.ErrNotFound)
		store.EXPECT().CreateContact(gomock.Any(), domain.IndividualPayload{
			SubType:     "Werver",
			FirstName:   "Els",
			LastName:    "Wouters",
			PrefixID:    1,
			GenderID:    1,
			RecruiterID: "R-2",
		}).Return(&domain.Contact{ID: 16}, nil)
		store.EXPECT().CreateRelationship(gomock.Any(), domain.Relationship{ContactIDA: 7, ContactIDB: 16, RelationshipTypeID: 12}).Return(nil)

		got, err := p.ProcessRecruiter(context.Background(), rec, org)
		require.NoError(t, err)
		assert.Equal(t, int64(16), got.ID)
	})

	t.Run("new recruiter without names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p, store, _ := newRecruiterProcessor(t, ctrl)

		rec := newRecord(2, domain.ColRecruiterID, "R-3", domain.ColRecruiterPrefix, "Mevrouw")
		store.EXPECT().IdentifyContact(gomock.Any(), "R-3", "recruiter_id").Return(int64(0), domain.ErrNotFound)
		store.EXPECT().CreateContact(gomock.Any(), domain.IndividualPayload{
			SubType:     "Werver",
			FirstName:   "R-3",
			LastName:    "Streetwise",
			RecruiterID: "R-3",
		}).Return(&domain.Contact{ID: 17}, nil)
		store.EXPECT().CreateRelationship(gomock.Any(), gomock.Any()).Return(nil)

		_, err := p.ProcessRecruiter(context.Background(), rec, org)
		require.NoError(t, err)
	})

	t.Run("creation failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p, store, _ := newRecruiterProcessor(t, ctrl)

		store.EXPECT().IdentifyContact(gomock.Any(), "R-4", "recruiter_id").Return(int64(0), domain.ErrNotFound)
		store.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(nil, errors.New("constraint violation"))
		store.EXPECT().CreateRelationship(gomock.Any(), gomock.Any()).Times(0)
		expectErrorActivities(store)

		_, err := p.ProcessRecruiter(context.Background(), newRecord(2, domain.ColRecruiterID, "R-4"), org)
		assert.True(t, errors.Is(err, usecase.ErrAborted))
	})
	t.Run("lookup failure does not create a recruiter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p, store, result := newRecruiterProcessor(t, ctrl)

		store.EXPECT().IdentifyContact(gomock.Any(), "R-5", "recruiter_id").Return(int64(0), errors.New("connection refused"))
		store.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Times(0)
		store.EXPECT().CreateRelationship(gomock.Any(), gomock.Any()).Times(0)
		expectErrorActivities(store)

		_, err := p.ProcessRecruiter(context.Background(), newRecord(2, domain.ColRecruiterID, "R-5"), org)
		assert.True(t, errors.Is(err, usecase.ErrAborted))
		assert.Equal(t, domain.SeverityFatal, result.MaxLevel())
	})

	t.Run("load failure of a known recruiter does not create a recruiter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		p, store, _ := newRecruiterProcessor(t, ctrl)

		store.EXPECT().IdentifyContact(gomock.Any(), "R-6", "recruiter_id").Return(int64(18), nil)
		store.EXPECT().GetContact(gomock.Any(), int64(18)).Return(nil, errors.New("connection reset"))
		store.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Times(0)
		expectErrorActivities(store)

		_, err := p.ProcessRecruiter(context.Background(), newRecord(2, domain.ColRecruiterID, "R-6"), org)
		assert.True(t, errors.Is(err, usecase.ErrAborted))
	})
}
