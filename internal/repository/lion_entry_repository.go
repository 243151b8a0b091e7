package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lionreport/internal/model"
)

// LIONEntryRepository defines L.I.O.N. entry persistence operations.
type LIONEntryRepository interface {
	Create(ctx context.Context, entry *model.LIONEntry) error
	Update(ctx context.Context, entry *model.LIONEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.LIONEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.LIONEntry, error)
}

type lionEntryRepository struct {
	db *gorm.DB
}

// NewLIONEntryRepository creates a new L.I.O.N. entry repository.
func NewLIONEntryRepository(db *gorm.DB) LIONEntryRepository {
	return &lionEntryRepository{db: db}
}

func (r *lionEntryRepository) Create(ctx context.Context, entry *model.LIONEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *lionEntryRepository) Update(ctx context.Context, entry *model.LIONEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *lionEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LIONEntry{}, "id = ?", id).Error
}

func (r *lionEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.LIONEntry, error) {
	var entry model.LIONEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *lionEntryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.LIONEntry, error) {
	var entries []model.LIONEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
