package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/recetasnicas/recipebook-be/internal/auth"
	"github.com/recetasnicas/recipebook-be/internal/models"
	"github.com/recetasnicas/recipebook-be/internal/services"
	"github.com/rs/zerolog/log"
)

// CookbookHandler handles HTTP requests for the authenticated user's saved
// recipes. The user identity always comes from the verified token claims.
type CookbookHandler struct {
	service services.CookbookServiceProvider
}

// NewCookbookHandler creates a new CookbookHandler.
func NewCookbookHandler(service services.CookbookServiceProvider) *CookbookHandler {
	return &CookbookHandler{service: service}
}

// RecipeRefPayload defines the structure for add/remove requests.
type RecipeRefPayload struct {
	RecipeID string `json:"recipeId"`
}

// Get handles listing the full recipes saved in the user's cookbook.
func (h *CookbookHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	recipes, err := h.service.GetForUser(claims.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to read cookbook")
		http.Error(w, "Error reading cookbooks.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipes)
}

// Add handles saving a recipe into the user's cookbook.
func (h *CookbookHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var payload RecipeRefPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Add(claims.UserID, payload.RecipeID); err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Str("recipe_id", payload.RecipeID).Msg("Failed to add recipe to cookbook")
		http.Error(w, "Error adding recipe to cookbook.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Recipe added to cookbook."})
}

// Remove handles dropping a recipe from the user's cookbook.
func (h *CookbookHandler) Remove(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		http.Error(w, "Could not retrieve user from token", http.StatusInternalServerError)
		return
	}

	var payload RecipeRefPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Remove(claims.UserID, payload.RecipeID); err != nil {
		if errors.Is(err, models.ErrNotInCookbook) {
			http.Error(w, "Recipe not found in cookbook.", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("user_id", claims.UserID).Str("recipe_id", payload.RecipeID).Msg("Failed to remove recipe from cookbook")
		http.Error(w, "Error removing recipe from cookbook.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Recipe removed from cookbook."})
}
