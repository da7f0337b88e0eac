package models

// Recipe is one entry of the global catalog. The ID is assigned on creation
// and never changes, even if an update payload carries a conflicting one.
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Image        string   `json:"image"`
	Premium      bool     `json:"premium,omitempty"`
}

// Cookbook maps a user ID to the recipe IDs that user has saved. The slice
// keeps insertion order but is semantically a set.
type Cookbook map[string][]string
