package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"streetimport/internal/domain"
	"streetimport/internal/usecase"
	mock_usecase "streetimport/internal/usecase/mocks"
)

func TestEntityResolver_FindContactByExternalID(t *testing.T) {
	tests := []struct {
		name    string
		donorID string
		orgID   int64
		setup   func(m *mock_usecase.MockDonorIDStore)
		want    usecase.Lookup
		wantErr bool
	}{
		{
			name:    "found within organisation",
			donorID: "D-1",
			orgID:   7,
			setup: func(m *mock_usecase.MockDonorIDStore) {
				m.EXPECT().FindContactByDonorID(gomock.Any(), int64(7), "D-1").Return(int64(42), nil)
			},
			want: usecase.Lookup{ContactID: 42, Found: true},
		},
		{
			name:    "same donor id under another organisation is not found",
			donorID: "D-1",
			orgID:   8,
			setup: func(m *mock_usecase.MockDonorIDStore) {
				m.EXPECT().FindContactByDonorID(gomock.Any(), int64(8), "D-1").Return(int64(0), domain.ErrNotFound)
			},
			want: usecase.Lookup{},
		},
		{
			name:    "empty donor id is never looked up",
			donorID: "",
			orgID:   7,
			setup:   func(m *mock_usecase.MockDonorIDStore) {},
			want:    usecase.Lookup{},
		},
		{
			name:    "store failure is not an absence",
			donorID: "D-1",
			orgID:   7,
			setup: func(m *mock_usecase.MockDonorIDStore) {
				m.EXPECT().FindContactByDonorID(gomock.Any(), int64(7), "D-1").Return(int64(0), errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			donorIDs := mock_usecase.NewMockDonorIDStore(ctrl)
			tt.setup(donorIDs)
			resolver := usecase.NewEntityResolver(mock_usecase.NewMockContactStore(ctrl), donorIDs)

			got, err := resolver.FindContactByExternalID(context.Background(), tt.donorID, tt.orgID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntityResolver_FindContactByIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contacts := mock_usecase.NewMockContactStore(ctrl)
	resolver := usecase.NewEntityResolver(contacts, mock_usecase.NewMockDonorIDStore(ctrl))

	contacts.EXPECT().IdentifyContact(gomock.Any(), "R-9", "recruiter_id").Return(int64(15), nil)
	got, err := resolver.FindContactByIdentifier(context.Background(), "R-9", "recruiter_id")
	assert.NoError(t, err)
	assert.Equal(t, usecase.Lookup{ContactID: 15, Found: true}, got)

	contacts.EXPECT().IdentifyContact(gomock.Any(), "R-10", "recruiter_id").Return(int64(0), domain.ErrNotFound)
	got, err = resolver.FindContactByIdentifier(context.Background(), "R-10", "recruiter_id")
	assert.NoError(t, err)
	assert.False(t, got.Found)
}

func TestEntityResolver_GetContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contacts := mock_usecase.NewMockContactStore(ctrl)
	resolver := usecase.NewEntityResolver(contacts, mock_usecase.NewMockDonorIDStore(ctrl))

	contacts.EXPECT().GetContact(gomock.Any(), int64(3)).Return(nil, domain.ErrNotFound)
	got, err := resolver.GetContact(context.Background(), 3)
	assert.NoError(t, err)
	assert.Nil(t, got)

	contacts.EXPECT().GetContact(gomock.Any(), int64(4)).Return(nil, errors.New("timeout"))
	_, err = resolver.GetContact(context.Background(), 4)
	assert.Error(t, err)
}
