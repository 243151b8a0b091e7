package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lionreport/internal/model"
)

// ReportRepository defines report audit persistence operations.
// Reports are immutable once created, so there is no update or delete.
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Report, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Report, error) {
	var reports []model.Report
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sent_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
