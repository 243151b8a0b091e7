package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lionreport/internal/model"
)

// DailyLogRepository defines daily log persistence operations.
type DailyLogRepository interface {
	Create(ctx context.Context, log *model.DailyLog) error
	Update(ctx context.Context, log *model.DailyLog) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DailyLog, error)
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*model.DailyLog, error)
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]model.DailyLog, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.DailyLog, error)
}

type dailyLogRepository struct {
	db *gorm.DB
}

// NewDailyLogRepository creates a new daily log repository.
func NewDailyLogRepository(db *gorm.DB) DailyLogRepository {
	return &dailyLogRepository{db: db}
}

func (r *dailyLogRepository) Create(ctx context.Context, log *model.DailyLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *dailyLogRepository) Update(ctx context.Context, log *model.DailyLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *dailyLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DailyLog, error) {
	var log model.DailyLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// FindByUserAndDate returns the canonical log for one calendar day.
func (r *dailyLogRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*model.DailyLog, error) {
	var log model.DailyLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// FindByUserAndDateRange returns logs whose date falls within [start, end]
// inclusive, ordered by date.
func (r *dailyLogRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *dailyLogRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
