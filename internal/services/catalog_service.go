package services

import (
	"github.com/oklog/ulid/v2"
	"github.com/recetasnicas/recipebook-be/internal/models"
	"github.com/recetasnicas/recipebook-be/internal/store"
)

// RecipeUpdate is the set of fields a catalog update may change. Nil fields
// are left untouched; the recipe ID is never updatable.
type RecipeUpdate struct {
	Name         *string   `json:"name"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *[]string `json:"instructions"`
	Image        *string   `json:"image"`
	Premium      *bool     `json:"premium"`
}

// CatalogServiceProvider defines the interface for recipe catalog services.
type CatalogServiceProvider interface {
	List() ([]models.Recipe, error)
	Get(id string) (models.Recipe, error)
	Create(recipe models.Recipe) (models.Recipe, error)
	Update(id string, patch RecipeUpdate) (models.Recipe, error)
	Delete(id string) error
}

// CatalogService provides CRUD over the global recipe collection.
type CatalogService struct {
	store     *store.Store
	cookbooks *CookbookService
}

// NewCatalogService creates a new CatalogService. The cookbook service is
// needed for cascade cleanup when a recipe is deleted.
func NewCatalogService(st *store.Store, cookbooks *CookbookService) *CatalogService {
	return &CatalogService{store: st, cookbooks: cookbooks}
}

// List returns the full catalog snapshot in insertion order.
func (s *CatalogService) List() ([]models.Recipe, error) {
	return s.store.Recipes()
}

// Get retrieves a single recipe by its ID.
func (s *CatalogService) Get(id string) (models.Recipe, error) {
	recipes, err := s.store.Recipes()
	if err != nil {
		return models.Recipe{}, err
	}
	for _, r := range recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Recipe{}, models.ErrRecipeNotFound
}

// Create appends a new recipe, assigning a fresh ID. Any ID in the payload is
// ignored.
func (s *CatalogService) Create(recipe models.Recipe) (models.Recipe, error) {
	recipe.ID = ulid.Make().String()
	err := s.store.UpdateRecipes(func(recipes []models.Recipe) ([]models.Recipe, error) {
		return append(recipes, recipe), nil
	})
	if err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

// Update merges the non-nil patch fields over the stored record. The ID from
// the path always wins; identity never changes via update.
func (s *CatalogService) Update(id string, patch RecipeUpdate) (models.Recipe, error) {
	var updated models.Recipe
	err := s.store.UpdateRecipes(func(recipes []models.Recipe) ([]models.Recipe, error) {
		for i := range recipes {
			if recipes[i].ID != id {
				continue
			}
			if patch.Name != nil {
				recipes[i].Name = *patch.Name
			}
			if patch.Ingredients != nil {
				recipes[i].Ingredients = *patch.Ingredients
			}
			if patch.Instructions != nil {
				recipes[i].Instructions = *patch.Instructions
			}
			if patch.Image != nil {
				recipes[i].Image = *patch.Image
			}
			if patch.Premium != nil {
				recipes[i].Premium = *patch.Premium
			}
			recipes[i].ID = id
			updated = recipes[i]
			return recipes, nil
		}
		return nil, models.ErrRecipeNotFound
	})
	if err != nil {
		return models.Recipe{}, err
	}
	return updated, nil
}

// Delete removes a recipe from the catalog and scrubs its ID from every
// user's cookbook. The delete is rejected unless the catalog actually
// shrinks.
func (s *CatalogService) Delete(id string) error {
	err := s.store.UpdateRecipes(func(recipes []models.Recipe) ([]models.Recipe, error) {
		kept := make([]models.Recipe, 0, len(recipes))
		for _, r := range recipes {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		if len(kept) == len(recipes) {
			return nil, models.ErrRecipeNotFound
		}
		return kept, nil
	})
	if err != nil {
		return err
	}
	return s.cookbooks.CascadeDelete(id)
}
