package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/recetasnicas/recipebook-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	return s, dir
}

func TestNew_SeedsDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	users, err := s.Users()
	require.NoError(t, err)
	assert.Empty(t, users)

	recipes, err := s.Recipes()
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Gallo Pinto", recipes[0].Name)
	assert.True(t, recipes[1].Premium)

	cookbook, err := s.Cookbook()
	require.NoError(t, err)
	assert.Empty(t, cookbook)
}

func TestNew_KeepsExistingDocuments(t *testing.T) {
	s, dir := newTestStore(t)

	err := s.UpdateUsers(func(users []models.User) ([]models.User, error) {
		return append(users, models.User{ID: "u1", Email: "a@x.com", PasswordHash: "h"}), nil
	})
	require.NoError(t, err)

	// Reopening the same directory must not reset anything.
	s2, err := New(dir)
	require.NoError(t, err)
	users, err := s2.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a@x.com", users[0].Email)
}

func TestWriteReadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	want := []models.Recipe{{
		ID:           "r1",
		Name:         "Sopa",
		Ingredients:  []string{"agua", "sal"},
		Instructions: []string{"hervir"},
		Image:        "https://example.com/sopa.png",
		Premium:      true,
	}}
	err := s.UpdateRecipes(func([]models.Recipe) ([]models.Recipe, error) {
		return want, nil
	})
	require.NoError(t, err)

	got, err := s.Recipes()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	wantCB := models.Cookbook{"u1": {"r1"}}
	err = s.UpdateCookbook(func(models.Cookbook) (models.Cookbook, error) {
		return wantCB, nil
	})
	require.NoError(t, err)

	gotCB, err := s.Cookbook()
	require.NoError(t, err)
	assert.Equal(t, wantCB, gotCB)
}

func TestRead_CorruptDocument(t *testing.T) {
	s, dir := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, recipesFile), []byte("{not json"), 0644))

	_, err := s.Recipes()
	assert.ErrorIs(t, err, ErrUnreadable)

	err = s.UpdateRecipes(func(recipes []models.Recipe) ([]models.Recipe, error) {
		return recipes, nil
	})
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestRead_MissingDocument(t *testing.T) {
	s, dir := newTestStore(t)

	require.NoError(t, os.Remove(filepath.Join(dir, usersFile)))

	_, err := s.Users()
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestUpdate_ClosureErrorAbortsWrite(t *testing.T) {
	s, _ := newTestStore(t)

	sentinel := models.ErrRecipeNotFound
	err := s.UpdateRecipes(func([]models.Recipe) ([]models.Recipe, error) {
		return nil, sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	// The seeded catalog must still be intact.
	recipes, err := s.Recipes()
	require.NoError(t, err)
	assert.Len(t, recipes, 3)
}
