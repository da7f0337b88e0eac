package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/recetasnicas/recipebook-be/internal/models"
	"github.com/recetasnicas/recipebook-be/internal/services"
	"github.com/rs/zerolog/log"
)

// RecipeHandler handles HTTP requests for the recipe catalog.
type RecipeHandler struct {
	service services.CatalogServiceProvider
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(service services.CatalogServiceProvider) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// GetAll handles listing the full catalog.
func (h *RecipeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to read recipes")
		http.Error(w, "Error reading recipes.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipes)
}

// Get handles retrieving a recipe by its ID.
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	recipe, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, models.ErrRecipeNotFound) {
			http.Error(w, "Recipe not found.", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("recipe_id", id).Msg("Failed to read recipes")
		http.Error(w, "Error reading recipes.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipe)
}

// Create handles adding a new recipe to the catalog.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	recipe, err := h.service.Create(payload)
	if err != nil {
		log.Error().Err(err).Str("name", payload.Name).Msg("Failed to add recipe")
		http.Error(w, "Error adding recipe.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(recipe)
}

// Update handles a partial update of an existing recipe.
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch services.RecipeUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	recipe, err := h.service.Update(id, patch)
	if err != nil {
		if errors.Is(err, models.ErrRecipeNotFound) {
			http.Error(w, "Recipe not found.", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("recipe_id", id).Msg("Failed to update recipe")
		http.Error(w, "Error updating recipe.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipe)
}

// Delete handles removing a recipe, cascading into every user's cookbook.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, models.ErrRecipeNotFound) {
			http.Error(w, "Recipe not found.", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("recipe_id", id).Msg("Failed to delete recipe")
		http.Error(w, "Error deleting recipe.", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
