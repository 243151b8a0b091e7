package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lionreport/internal/model"
)

// MockDailyLogRepository is a mock implementation of DailyLogRepository.
type MockDailyLogRepository struct {
	mock.Mock
}

func (m *MockDailyLogRepository) Create(ctx context.Context, log *model.DailyLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockDailyLogRepository) Update(ctx context.Context, log *model.DailyLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockDailyLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DailyLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DailyLog), args.Error(1)
}

func (m *MockDailyLogRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*model.DailyLog, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DailyLog), args.Error(1)
}

func (m *MockDailyLogRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]model.DailyLog, error) {
	args := m.Called(ctx, userID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DailyLog), args.Error(1)
}

func (m *MockDailyLogRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.DailyLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DailyLog), args.Error(1)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPreviousWorkWeek(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "wednesday mid-week",
			today:     date(2024, time.June, 12),
			wantStart: date(2024, time.June, 3),
			wantEnd:   date(2024, time.June, 7),
		},
		{
			name:      "monday",
			today:     date(2024, time.June, 10),
			wantStart: date(2024, time.June, 3),
			wantEnd:   date(2024, time.June, 7),
		},
		{
			name:      "friday",
			today:     date(2024, time.June, 14),
			wantStart: date(2024, time.June, 3),
			wantEnd:   date(2024, time.June, 7),
		},
		{
			name:      "sunday still belongs to the current week",
			today:     date(2024, time.June, 16),
			wantStart: date(2024, time.June, 3),
			wantEnd:   date(2024, time.June, 7),
		},
		{
			name:      "next monday rolls the window forward",
			today:     date(2024, time.June, 17),
			wantStart: date(2024, time.June, 10),
			wantEnd:   date(2024, time.June, 14),
		},
		{
			name:      "window crosses a month boundary",
			today:     date(2024, time.July, 3),
			wantStart: date(2024, time.June, 24),
			wantEnd:   date(2024, time.June, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := PreviousWorkWeek(tt.today)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.Equal(t, time.Monday, start.Weekday())
			assert.Equal(t, time.Friday, end.Weekday())
		})
	}
}

func TestComposer_Compose_DefaultWindow(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(MockDailyLogRepository)
	mockRepo.On("FindByUserAndDateRange", mock.Anything, userID,
		date(2024, time.June, 3), date(2024, time.June, 7)).
		Return([]model.DailyLog{}, nil)

	c := NewComposer(mockRepo, StaticSummarizer{}, nil).(*composer)
	c.now = func() time.Time { return date(2024, time.June, 12) }

	summary, err := c.Compose(context.Background(), userID, time.Time{}, time.Time{})
	assert.NoError(t, err)
	assert.NotEmpty(t, summary.LastWeek)
	mockRepo.AssertExpectations(t)
}

func TestComposer_Compose_EmptyLogSet(t *testing.T) {
	userID := uuid.New()
	start := date(2024, time.June, 3)
	end := date(2024, time.June, 7)

	mockRepo := new(MockDailyLogRepository)
	mockRepo.On("FindByUserAndDateRange", mock.Anything, userID, start, end).
		Return([]model.DailyLog{}, nil)

	c := NewComposer(mockRepo, StaticSummarizer{}, nil)

	summary, err := c.Compose(context.Background(), userID, start, end)
	assert.NoError(t, err)
	assert.NotEmpty(t, summary.LastWeek)
	assert.NotEmpty(t, summary.Issues)
	assert.NotEmpty(t, summary.Opportunities)
	assert.NotEmpty(t, summary.NextWeek)
	mockRepo.AssertExpectations(t)
}
