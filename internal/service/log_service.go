package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"lionreport/internal/errors"
	"lionreport/internal/model"
	"lionreport/internal/repository"
)

// LogFields carries the four free-text sections of a daily log.
type LogFields struct {
	Achievements  string
	Issues        string
	Opportunities string
	NextDayTasks  string
}

// LogService handles daily log operations.
type LogService interface {
	Submit(ctx context.Context, userID uuid.UUID, date time.Time, fields LogFields) (*model.DailyLog, error)
	Update(ctx context.Context, userID, logID uuid.UUID, fields LogFields) (*model.DailyLog, error)
	Get(ctx context.Context, userID, logID uuid.UUID) (*model.DailyLog, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.DailyLog, error)
	ExportXLSX(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

type logService struct {
	logRepo repository.DailyLogRepository
}

// NewLogService creates a new daily log service.
func NewLogService(logRepo repository.DailyLogRepository) LogService {
	return &logService{logRepo: logRepo}
}

// Submit upserts the canonical log for (user, date): an existing row for
// that day is updated in place, otherwise a new one is created.
func (s *logService) Submit(ctx context.Context, userID uuid.UUID, date time.Time, fields LogFields) (*model.DailyLog, error) {
	date = truncateToDate(date)

	existing, err := s.logRepo.FindByUserAndDate(ctx, userID, date)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check existing log: %w", err)
	}

	if existing != nil {
		existing.Achievements = fields.Achievements
		existing.Issues = fields.Issues
		existing.Opportunities = fields.Opportunities
		existing.NextDayTasks = fields.NextDayTasks
		if err := s.logRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update daily log: %w", err)
		}
		return existing, nil
	}

	log := &model.DailyLog{
		UserID:        userID,
		Date:          date,
		Achievements:  fields.Achievements,
		Issues:        fields.Issues,
		Opportunities: fields.Opportunities,
		NextDayTasks:  fields.NextDayTasks,
	}
	if err := s.logRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("create daily log: %w", err)
	}
	return log, nil
}

// Update edits an existing log after verifying ownership.
func (s *logService) Update(ctx context.Context, userID, logID uuid.UUID, fields LogFields) (*model.DailyLog, error) {
	log, err := s.Get(ctx, userID, logID)
	if err != nil {
		return nil, err
	}

	log.Achievements = fields.Achievements
	log.Issues = fields.Issues
	log.Opportunities = fields.Opportunities
	log.NextDayTasks = fields.NextDayTasks
	if err := s.logRepo.Update(ctx, log); err != nil {
		return nil, fmt.Errorf("update daily log: %w", err)
	}
	return log, nil
}

func (s *logService) Get(ctx context.Context, userID, logID uuid.UUID) (*model.DailyLog, error) {
	log, err := s.logRepo.FindByID(ctx, logID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrLogNotFound
		}
		return nil, err
	}
	if err := requireOwner(log.UserID, userID); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *logService) List(ctx context.Context, userID uuid.UUID) ([]model.DailyLog, error) {
	return s.logRepo.ListByUser(ctx, userID)
}

// ExportXLSX renders all of a user's daily logs into a spreadsheet,
// newest first, one row per log.
func (s *logService) ExportXLSX(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	logs, err := s.logRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Daily Logs"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	setCell := func(col, row int, v string) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	headers := []string{"Date", "Achievements", "Issues", "Opportunities", "Next Day Tasks"}
	for i, h := range headers {
		if err := setCell(i+1, 1, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for row, log := range logs {
		values := []string{
			log.Date.Format("2006-01-02"),
			log.Achievements,
			log.Issues,
			log.Opportunities,
			log.NextDayTasks,
		}
		for col, v := range values {
			if err := setCell(col+1, row+2, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// requireOwner is the single ownership predicate used on every read,
// update, and delete of a user-owned record.
func requireOwner(ownerID, callerID uuid.UUID) error {
	if ownerID != callerID {
		return errors.ErrForbidden
	}
	return nil
}

// truncateToDate strips the time component so date-typed columns compare
// consistently regardless of the caller's clock precision.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
