package services

import (
	"github.com/recetasnicas/recipebook-be/internal/models"
	"github.com/recetasnicas/recipebook-be/internal/store"
)

// CookbookServiceProvider defines the interface for per-user saved-recipe
// services.
type CookbookServiceProvider interface {
	GetForUser(userID string) ([]models.Recipe, error)
	Add(userID, recipeID string) error
	Remove(userID, recipeID string) error
}

// CookbookService maintains each user's set of saved recipe IDs.
type CookbookService struct {
	store *store.Store
}

// NewCookbookService creates a new CookbookService.
func NewCookbookService(st *store.Store) *CookbookService {
	return &CookbookService{store: st}
}

// GetForUser resolves the user's saved IDs against the current catalog and
// returns the full records. IDs that no longer resolve are dropped from the
// result; cascade cleanup should keep that from happening.
func (s *CookbookService) GetForUser(userID string) ([]models.Recipe, error) {
	cookbook, err := s.store.Cookbook()
	if err != nil {
		return nil, err
	}
	saved := make(map[string]bool, len(cookbook[userID]))
	for _, id := range cookbook[userID] {
		saved[id] = true
	}

	recipes, err := s.store.Recipes()
	if err != nil {
		return nil, err
	}

	result := make([]models.Recipe, 0, len(saved))
	for _, r := range recipes {
		if saved[r.ID] {
			result = append(result, r)
		}
	}
	return result, nil
}

// Add saves a recipe ID into the user's cookbook, lazily creating the entry.
// Adding an ID already present is a no-op success.
func (s *CookbookService) Add(userID, recipeID string) error {
	return s.store.UpdateCookbook(func(cookbook models.Cookbook) (models.Cookbook, error) {
		for _, id := range cookbook[userID] {
			if id == recipeID {
				return cookbook, nil
			}
		}
		cookbook[userID] = append(cookbook[userID], recipeID)
		return cookbook, nil
	})
}

// Remove drops a recipe ID from the user's cookbook. It fails with
// ErrNotInCookbook when the ID was not saved, leaving the set untouched.
func (s *CookbookService) Remove(userID, recipeID string) error {
	return s.store.UpdateCookbook(func(cookbook models.Cookbook) (models.Cookbook, error) {
		ids, ok := cookbook[userID]
		if !ok {
			return nil, models.ErrNotInCookbook
		}
		kept := make([]string, 0, len(ids))
		for _, id := range ids {
			if id != recipeID {
				kept = append(kept, id)
			}
		}
		if len(kept) == len(ids) {
			return nil, models.ErrNotInCookbook
		}
		cookbook[userID] = kept
		return cookbook, nil
	})
}

// CascadeDelete removes a recipe ID from every user's cookbook, writing the
// document once for the whole cascade. Invoked by the catalog when a recipe
// is deleted.
func (s *CookbookService) CascadeDelete(recipeID string) error {
	return s.store.UpdateCookbook(func(cookbook models.Cookbook) (models.Cookbook, error) {
		for userID, ids := range cookbook {
			kept := make([]string, 0, len(ids))
			for _, id := range ids {
				if id != recipeID {
					kept = append(kept, id)
				}
			}
			cookbook[userID] = kept
		}
		return cookbook, nil
	})
}
