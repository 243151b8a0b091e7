package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lionreport/internal/errors"
	"lionreport/internal/model"
	"lionreport/internal/repository"
)

// EntryFields carries the four free-text sections of a L.I.O.N. entry.
type EntryFields struct {
	LastWeekAchievements string
	Issues               string
	Opportunities        string
	NextWeekCommitments  string
}

// EntryService handles L.I.O.N. entry CRUD. Entries are owned exclusively
// by their author; every read, update, and delete verifies ownership.
type EntryService interface {
	Create(ctx context.Context, userID uuid.UUID, fields EntryFields) (*model.LIONEntry, error)
	Get(ctx context.Context, userID, entryID uuid.UUID) (*model.LIONEntry, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.LIONEntry, error)
	Update(ctx context.Context, userID, entryID uuid.UUID, fields EntryFields) (*model.LIONEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

type entryService struct {
	entryRepo repository.LIONEntryRepository
}

// NewEntryService creates a new L.I.O.N. entry service.
func NewEntryService(entryRepo repository.LIONEntryRepository) EntryService {
	return &entryService{entryRepo: entryRepo}
}

func (s *entryService) Create(ctx context.Context, userID uuid.UUID, fields EntryFields) (*model.LIONEntry, error) {
	entry := &model.LIONEntry{
		UserID:               userID,
		Date:                 truncateToDate(time.Now()),
		LastWeekAchievements: fields.LastWeekAchievements,
		Issues:               fields.Issues,
		Opportunities:        fields.Opportunities,
		NextWeekCommitments:  fields.NextWeekCommitments,
	}
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return entry, nil
}

func (s *entryService) Get(ctx context.Context, userID, entryID uuid.UUID) (*model.LIONEntry, error) {
	entry, err := s.entryRepo.FindByID(ctx, entryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEntryNotFound
		}
		return nil, err
	}
	if err := requireOwner(entry.UserID, userID); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *entryService) List(ctx context.Context, userID uuid.UUID) ([]model.LIONEntry, error) {
	return s.entryRepo.ListByUser(ctx, userID)
}

func (s *entryService) Update(ctx context.Context, userID, entryID uuid.UUID, fields EntryFields) (*model.LIONEntry, error) {
	entry, err := s.Get(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.LastWeekAchievements = fields.LastWeekAchievements
	entry.Issues = fields.Issues
	entry.Opportunities = fields.Opportunities
	entry.NextWeekCommitments = fields.NextWeekCommitments
	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return entry, nil
}

func (s *entryService) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if _, err := s.Get(ctx, userID, entryID); err != nil {
		return err
	}
	return s.entryRepo.Delete(ctx, entryID)
}
