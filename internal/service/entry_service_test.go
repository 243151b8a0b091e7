package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "lionreport/internal/errors"
	"lionreport/internal/model"
)

// MockLIONEntryRepository is a mock implementation of LIONEntryRepository.
type MockLIONEntryRepository struct {
	mock.Mock
}

func (m *MockLIONEntryRepository) Create(ctx context.Context, entry *model.LIONEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLIONEntryRepository) Update(ctx context.Context, entry *model.LIONEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLIONEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLIONEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.LIONEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LIONEntry), args.Error(1)
}

func (m *MockLIONEntryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.LIONEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LIONEntry), args.Error(1)
}

func TestEntryService_OwnershipEnforced(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	entryID := uuid.New()
	entry := &model.LIONEntry{ID: entryID, UserID: owner, LastWeekAchievements: "did things"}

	tests := []struct {
		name    string
		caller  uuid.UUID
		wantErr error
	}{
		{name: "owner may read", caller: owner, wantErr: nil},
		{name: "stranger is rejected", caller: stranger, wantErr: apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLIONEntryRepository)
			mockRepo.On("FindByID", mock.Anything, entryID).Return(entry, nil)

			svc := NewEntryService(mockRepo)
			got, err := svc.Get(context.Background(), tt.caller, entryID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, entry, got)
			}
		})
	}
}

func TestEntryService_UpdateByStrangerRejected(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	entryID := uuid.New()
	entry := &model.LIONEntry{ID: entryID, UserID: owner}

	mockRepo := new(MockLIONEntryRepository)
	mockRepo.On("FindByID", mock.Anything, entryID).Return(entry, nil)

	svc := NewEntryService(mockRepo)
	_, err := svc.Update(context.Background(), stranger, entryID, EntryFields{LastWeekAchievements: "hijack"})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEntryService_DeleteByStrangerRejected(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	entryID := uuid.New()
	entry := &model.LIONEntry{ID: entryID, UserID: owner}

	mockRepo := new(MockLIONEntryRepository)
	mockRepo.On("FindByID", mock.Anything, entryID).Return(entry, nil)

	svc := NewEntryService(mockRepo)
	err := svc.Delete(context.Background(), stranger, entryID)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestEntryService_GetMissingEntry(t *testing.T) {
	mockRepo := new(MockLIONEntryRepository)
	entryID := uuid.New()
	mockRepo.On("FindByID", mock.Anything, entryID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewEntryService(mockRepo)
	_, err := svc.Get(context.Background(), uuid.New(), entryID)

	assert.ErrorIs(t, err, apperrors.ErrEntryNotFound)
}
