package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "lionreport/internal/errors"
	"lionreport/internal/model"
)

// MockReportRepository is a mock implementation of ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *model.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Report, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Report), args.Error(1)
}

// MockTeamRepository is a mock implementation of TeamRepository.
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) CreateCompany(ctx context.Context, company *model.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockTeamRepository) CreateTeam(ctx context.Context, team *model.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) FindTeamByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockTeamRepository) ListTeamsByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Team, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}

// fakeMailer records sent messages and optionally fails a number of times.
type fakeMailer struct {
	failures int
	calls    int
	sent     []*MailMessage
}

func (f *fakeMailer) Send(ctx context.Context, msg *MailMessage) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("smtp: connection refused")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func testDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		SendTimeout: time.Second,
		MaxRetries:  3,
		RetryDelay:  time.Millisecond,
	}
}

func newTestDispatcher(mailer Mailer, reportRepo *MockReportRepository, teamRepo *MockTeamRepository) Dispatcher {
	return NewDispatcher(mailer, reportRepo, new(MockUserRepository), teamRepo,
		nil, nil, testDispatcherConfig())
}

func TestDispatcher_Dispatch_Recipients(t *testing.T) {
	summary := model.Summary{LastWeek: "a", Issues: "b", Opportunities: "c", NextWeek: "d"}
	pdf := []byte("%PDF-1.4 fake")

	tests := []struct {
		name           string
		user           model.User
		wantRecipients string
	}{
		{
			name:           "user with manager email",
			user:           model.User{ID: uuid.New(), Email: "a@x.com", ManagerEmail: "b@x.com"},
			wantRecipients: "a@x.com, b@x.com",
		},
		{
			name:           "user without manager email",
			user:           model.User{ID: uuid.New(), Email: "a@x.com"},
			wantRecipients: "a@x.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{}
			reportRepo := new(MockReportRepository)
			reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Report")).Return(nil)

			d := newTestDispatcher(mailer, reportRepo, new(MockTeamRepository))
			report, err := d.Dispatch(context.Background(), &tt.user, summary, pdf)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRecipients, report.Recipients)
			assert.Len(t, mailer.sent, 1)
			assert.Equal(t, "Weekly L.I.O.N Report", mailer.sent[0].Subject)
			assert.Equal(t, "LION_Report.pdf", mailer.sent[0].AttachmentName)
			assert.Equal(t, "application/pdf", mailer.sent[0].AttachmentMIME)
			reportRepo.AssertExpectations(t)
		})
	}
}

func TestDispatcher_Dispatch_TeamManagerFallback(t *testing.T) {
	teamID := uuid.New()
	user := model.User{ID: uuid.New(), Email: "a@x.com", TeamID: &teamID}

	teamRepo := new(MockTeamRepository)
	teamRepo.On("FindTeamByID", mock.Anything, teamID).
		Return(&model.Team{ID: teamID, ManagerEmail: "lead@x.com"}, nil)

	mailer := &fakeMailer{}
	reportRepo := new(MockReportRepository)
	reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Report")).Return(nil)

	d := newTestDispatcher(mailer, reportRepo, teamRepo)
	report, err := d.Dispatch(context.Background(), &user, model.Summary{}, []byte("pdf"))

	assert.NoError(t, err)
	assert.Equal(t, "a@x.com, lead@x.com", report.Recipients)
	teamRepo.AssertExpectations(t)
}

func TestDispatcher_Dispatch_AuditConsistency(t *testing.T) {
	user := model.User{ID: uuid.New(), Email: "a@x.com", ManagerEmail: "b@x.com"}
	summary := model.Summary{LastWeek: "w", Issues: "x", Opportunities: "y", NextWeek: "z"}

	t.Run("success writes exactly one audit row", func(t *testing.T) {
		mailer := &fakeMailer{}
		reportRepo := new(MockReportRepository)
		reportRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Report) bool {
			return r.UserID == user.ID &&
				r.Recipients == "a@x.com, b@x.com" &&
				r.LastWeek == "w" && r.NextWeek == "z"
		})).Return(nil).Once()

		d := newTestDispatcher(mailer, reportRepo, new(MockTeamRepository))
		report, err := d.Dispatch(context.Background(), &user, summary, []byte("pdf"))

		assert.NoError(t, err)
		assert.NotNil(t, report)
		reportRepo.AssertExpectations(t)
		reportRepo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("transport failure writes no audit row", func(t *testing.T) {
		mailer := &fakeMailer{failures: 100}
		reportRepo := new(MockReportRepository)

		d := newTestDispatcher(mailer, reportRepo, new(MockTeamRepository))
		report, err := d.Dispatch(context.Background(), &user, summary, []byte("pdf"))

		assert.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrDeliveryFailed))
		assert.Nil(t, report)
		reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestDispatcher_Dispatch_RetriesTransientFailures(t *testing.T) {
	user := model.User{ID: uuid.New(), Email: "a@x.com"}

	mailer := &fakeMailer{failures: 2}
	reportRepo := new(MockReportRepository)
	reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Report")).Return(nil)

	d := newTestDispatcher(mailer, reportRepo, new(MockTeamRepository))
	_, err := d.Dispatch(context.Background(), &user, model.Summary{}, []byte("pdf"))

	assert.NoError(t, err)
	assert.Equal(t, 3, mailer.calls)
}

func TestDispatcher_SendAll_ContinuesPastFailures(t *testing.T) {
	users := []model.User{
		{ID: uuid.New(), Username: "alice", Email: "alice@co.com"},
		{ID: uuid.New(), Username: "bob", Email: "bob@co.com"},
	}

	userRepo := new(MockUserRepository)
	userRepo.On("List", mock.Anything).Return(users, nil)

	logRepo := new(MockDailyLogRepository)
	logRepo.On("FindByUserAndDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]model.DailyLog{}, nil)

	// First user's send fails, second succeeds: retries exhaust on the
	// first user (3 attempts), then the second user's single attempt lands.
	mailer := &fakeMailer{failures: 3}
	reportRepo := new(MockReportRepository)
	reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Report")).Return(nil).Once()

	d := NewDispatcher(mailer, reportRepo, userRepo, new(MockTeamRepository),
		NewComposer(logRepo, StaticSummarizer{}, nil), NewPDFRenderer(), testDispatcherConfig())

	err := d.SendAll(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	reportRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestWeeklyWorkflow_EndToEnd(t *testing.T) {
	userID := uuid.New()
	alice := model.User{
		ID:           userID,
		Username:     "alice",
		Email:        "alice@co.com",
		ManagerEmail: "mgr@co.com",
	}

	// One log on the Tuesday of the previous work week.
	weekStart := date(2024, time.June, 3)
	weekEnd := date(2024, time.June, 7)
	logs := []model.DailyLog{{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         date(2024, time.June, 4),
		Achievements: "Shipped X",
	}}

	logRepo := new(MockDailyLogRepository)
	logRepo.On("FindByUserAndDateRange", mock.Anything, userID, weekStart, weekEnd).
		Return(logs, nil)

	c := NewComposer(logRepo, StaticSummarizer{}, nil).(*composer)
	c.now = func() time.Time { return date(2024, time.June, 12) }

	summary, err := c.Compose(context.Background(), userID, time.Time{}, time.Time{})
	assert.NoError(t, err)
	assert.NotEmpty(t, summary.LastWeek)

	pdf, err := NewPDFRenderer().Render(summary)
	assert.NoError(t, err)
	assert.NotEmpty(t, pdf)

	mailer := &fakeMailer{}
	reportRepo := new(MockReportRepository)
	reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Report")).Return(nil).Once()

	d := newTestDispatcher(mailer, reportRepo, new(MockTeamRepository))
	report, err := d.Dispatch(context.Background(), &alice, summary, pdf)

	assert.NoError(t, err)
	assert.Equal(t, "alice@co.com, mgr@co.com", report.Recipients)
	assert.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"alice@co.com", "mgr@co.com"}, mailer.sent[0].To)
	assert.Equal(t, pdf, mailer.sent[0].Attachment)
	reportRepo.AssertExpectations(t)
	logRepo.AssertExpectations(t)
}
