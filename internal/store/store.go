// Package store persists the three JSON documents (users, recipes, cookbook)
// that hold all application state. Every request re-reads the documents it
// needs; the file content is the authoritative state, never process memory.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/recetasnicas/recipebook-be/internal/models"
)

const (
	usersFile    = "users.json"
	recipesFile  = "recipes.json"
	cookbookFile = "cookbook.json"
)

var (
	// ErrUnreadable means a document is missing or not valid JSON. Fatal for
	// the request; callers must not fall back to an empty default.
	ErrUnreadable = errors.New("store: document unreadable")
	// ErrUnwritable means a document could not be persisted.
	ErrUnwritable = errors.New("store: document unwritable")
)

// Store reads and writes the JSON documents under a single data directory.
// Each document has its own mutex, held for the duration of a full
// read-modify-write cycle, so concurrent updates to the same document cannot
// lose each other's writes. Operations spanning two documents are still two
// separate writes.
type Store struct {
	dir string

	usersMu    sync.Mutex
	recipesMu  sync.Mutex
	cookbookMu sync.Mutex
}

// New opens the data directory, creating it and seeding any missing document
// with its default content.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	s := &Store{dir: dir}
	if err := s.initDefaults(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) initDefaults() error {
	if err := initFile(s.path(usersFile), []models.User{}); err != nil {
		return err
	}
	if err := initFile(s.path(recipesFile), seedRecipes()); err != nil {
		return err
	}
	return initFile(s.path(cookbookFile), models.Cookbook{})
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// initFile writes the default content only when the file does not exist yet.
func initFile(path string, defaultContent any) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return writeDoc(path, defaultContent)
}

func readDoc[T any](path string) (T, error) {
	var doc T
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("%w: %s: %v", ErrUnreadable, filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("%w: %s: %v", ErrUnreadable, filepath.Base(path), err)
	}
	return doc, nil
}

func writeDoc(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnwritable, filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnwritable, filepath.Base(path), err)
	}
	return nil
}

// updateDoc runs one serialized read-modify-write cycle. A nil error from fn
// persists the returned document; any error aborts the cycle unwritten and is
// returned as-is so domain errors pass through.
func updateDoc[T any](mu *sync.Mutex, path string, fn func(T) (T, error)) error {
	mu.Lock()
	defer mu.Unlock()

	doc, err := readDoc[T](path)
	if err != nil {
		return err
	}
	doc, err = fn(doc)
	if err != nil {
		return err
	}
	return writeDoc(path, doc)
}

// Users returns the current user list.
func (s *Store) Users() ([]models.User, error) {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	return readDoc[[]models.User](s.path(usersFile))
}

// UpdateUsers atomically rewrites the user document.
func (s *Store) UpdateUsers(fn func([]models.User) ([]models.User, error)) error {
	return updateDoc(&s.usersMu, s.path(usersFile), fn)
}

// Recipes returns the current catalog snapshot in insertion order.
func (s *Store) Recipes() ([]models.Recipe, error) {
	s.recipesMu.Lock()
	defer s.recipesMu.Unlock()
	return readDoc[[]models.Recipe](s.path(recipesFile))
}

// UpdateRecipes atomically rewrites the recipe document.
func (s *Store) UpdateRecipes(fn func([]models.Recipe) ([]models.Recipe, error)) error {
	return updateDoc(&s.recipesMu, s.path(recipesFile), fn)
}

// Cookbook returns the current user -> saved-recipe-IDs mapping.
func (s *Store) Cookbook() (models.Cookbook, error) {
	s.cookbookMu.Lock()
	defer s.cookbookMu.Unlock()
	return readDoc[models.Cookbook](s.path(cookbookFile))
}

// UpdateCookbook atomically rewrites the cookbook document.
func (s *Store) UpdateCookbook(fn func(models.Cookbook) (models.Cookbook, error)) error {
	return updateDoc(&s.cookbookMu, s.path(cookbookFile), fn)
}
