package services

import (
	"context"
	"time"

	"github.com/wordbin/wordbin/internal/errors"
	"github.com/wordbin/wordbin/internal/logger"
	"github.com/wordbin/wordbin/internal/models"
	"github.com/wordbin/wordbin/internal/repository"
)

// ItemService manages the study set: introducing concepts and listing what
// is due for an exercise session.
type ItemService interface {
	// IntroduceConcepts creates a bin-1 item with no timestamps for every
	// concept not already in the user's study set. Returns the number of
	// newly introduced items.
	IntroduceConcepts(ctx context.Context, userID int64, languageCode string, conceptIDs []string) (int, error)
	DueItems(ctx context.Context, userID int64, languageCode string, limit int) ([]models.LearningItem, error)
}

type itemService struct {
	users repository.UserRepository
	items repository.ItemRepository
	now   func() time.Time
}

// NewItemService creates a new ItemService
func NewItemService(users repository.UserRepository, items repository.ItemRepository, now func() time.Time) ItemService {
	return &itemService{users: users, items: items, now: now}
}

func (s *itemService) IntroduceConcepts(ctx context.Context, userID int64, languageCode string, conceptIDs []string) (int, error) {
	log := logger.FromContext(ctx)
	log.Debug("introducing concepts: user_id=%d, language=%s, count=%d", userID, languageCode, len(conceptIDs))

	if languageCode == "" {
		return 0, errors.NewValidationError("language_code", "cannot be empty")
	}
	if len(conceptIDs) == 0 {
		return 0, errors.NewValidationError("concept_ids", "cannot be empty")
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		log.Error("failed to load user: %v", err)
		return 0, errors.NewInternalError(err)
	}
	if user == nil {
		return 0, errors.NewNotFoundError("user", userID)
	}

	items := make([]models.LearningItem, 0, len(conceptIDs))
	for _, conceptID := range conceptIDs {
		if conceptID == "" {
			return 0, errors.NewValidationError("concept_ids", "concept id cannot be empty")
		}
		items = append(items, models.LearningItem{
			UserID:       userID,
			ConceptID:    conceptID,
			LanguageCode: languageCode,
			Bin:          1,
		})
	}

	inserted, err := s.items.InsertBatch(ctx, items)
	if err != nil {
		log.Error("failed to introduce concepts: %v", err)
		return 0, errors.NewInternalError(err)
	}

	log.Info("introduced %d concepts (%d already present)", inserted, len(items)-inserted)
	return inserted, nil
}

func (s *itemService) DueItems(ctx context.Context, userID int64, languageCode string, limit int) ([]models.LearningItem, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing due items: user_id=%d, language=%s, limit=%d", userID, languageCode, limit)

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		log.Error("failed to load user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("user", userID)
	}

	now := s.now()
	items, err := s.items.List(ctx, models.ItemFilter{
		UserID:       userID,
		LanguageCode: languageCode,
		DueBefore:    &now,
		Limit:        limit,
	})
	if err != nil {
		log.Error("failed to list due items: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return items, nil
}
