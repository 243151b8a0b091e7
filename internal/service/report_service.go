package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lionreport/internal/errors"
	"lionreport/internal/model"
	"lionreport/internal/repository"
)

// ReportService is the request-facing facade over the weekly report
// pipeline: compose a summary, render it, dispatch it, read back the
// audit history.
type ReportService interface {
	Preview(ctx context.Context, userID uuid.UUID) (model.Summary, error)
	Send(ctx context.Context, userID uuid.UUID, summary model.Summary) (*model.Report, error)
	History(ctx context.Context, userID uuid.UUID) ([]model.Report, error)
}

type reportService struct {
	composer   Composer
	renderer   Renderer
	dispatcher Dispatcher
	userRepo   repository.UserRepository
	reportRepo repository.ReportRepository
}

// NewReportService creates a new report service.
func NewReportService(
	composer Composer,
	renderer Renderer,
	dispatcher Dispatcher,
	userRepo repository.UserRepository,
	reportRepo repository.ReportRepository,
) ReportService {
	return &reportService{
		composer:   composer,
		renderer:   renderer,
		dispatcher: dispatcher,
		userRepo:   userRepo,
		reportRepo: reportRepo,
	}
}

// Preview composes a summary of the previous work week's logs for the
// user to review and edit before sending.
func (s *reportService) Preview(ctx context.Context, userID uuid.UUID) (model.Summary, error) {
	return s.composer.Compose(ctx, userID, time.Time{}, time.Time{})
}

// Send validates the edited summary, renders the PDF, and dispatches it.
func (s *reportService) Send(ctx context.Context, userID uuid.UUID, summary model.Summary) (*model.Report, error) {
	if strings.TrimSpace(summary.LastWeek) == "" || strings.TrimSpace(summary.NextWeek) == "" {
		return nil, fmt.Errorf("%w: last_week and next_week are required", errors.ErrValidation)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	pdf, err := s.renderer.Render(summary)
	if err != nil {
		return nil, err
	}

	return s.dispatcher.Dispatch(ctx, user, summary, pdf)
}

// History lists the caller's sent-report audit rows, newest first.
func (s *reportService) History(ctx context.Context, userID uuid.UUID) ([]model.Report, error) {
	return s.reportRepo.ListByUser(ctx, userID)
}
