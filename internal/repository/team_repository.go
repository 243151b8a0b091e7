package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lionreport/internal/model"
)

// TeamRepository defines team and company persistence operations.
type TeamRepository interface {
	CreateCompany(ctx context.Context, company *model.Company) error
	CreateTeam(ctx context.Context, team *model.Team) error
	FindTeamByID(ctx context.Context, id uuid.UUID) (*model.Team, error)
	ListTeamsByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Team, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) CreateCompany(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *teamRepository) CreateTeam(ctx context.Context, team *model.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) FindTeamByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) ListTeamsByCompany(ctx context.Context, companyID uuid.UUID) ([]model.Team, error) {
	var teams []model.Team
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}
