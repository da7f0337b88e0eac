package services

import (
	"testing"

	"github.com/recetasnicas/recipebook-be/internal/models"
	"github.com/recetasnicas/recipebook-be/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) (*CatalogService, *CookbookService, *store.Store) {
	t.Helper()
	st := newTestStore(t)
	cookbooks := NewCookbookService(st)
	return NewCatalogService(st, cookbooks), cookbooks, st
}

func TestCreate_AssignsFreshID(t *testing.T) {
	catalog, _, _ := newTestCatalog(t)

	created, err := catalog.Create(models.Recipe{
		ID:          "client-supplied",
		Name:        "Sopa de Queso",
		Ingredients: []string{"queso", "leche"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "client-supplied", created.ID)

	got, err := catalog.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestList_KeepsInsertionOrder(t *testing.T) {
	catalog, _, _ := newTestCatalog(t)

	created, err := catalog.Create(models.Recipe{Name: "Quesillo"})
	require.NoError(t, err)

	recipes, err := catalog.List()
	require.NoError(t, err)
	require.Len(t, recipes, 4)
	assert.Equal(t, "Gallo Pinto", recipes[0].Name)
	assert.Equal(t, created.ID, recipes[3].ID)
}

func TestGet_NotFound(t *testing.T) {
	catalog, _, _ := newTestCatalog(t)

	_, err := catalog.Get("missing")
	assert.ErrorIs(t, err, models.ErrRecipeNotFound)
}

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	catalog, _, _ := newTestCatalog(t)

	before, err := catalog.Get("1")
	require.NoError(t, err)

	name := "Gallo Pinto Casero"
	updated, err := catalog.Update("1", RecipeUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, before.Ingredients, updated.Ingredients)
	assert.Equal(t, before.Instructions, updated.Instructions)
	assert.Equal(t, before.Image, updated.Image)
	assert.Equal(t, before.Premium, updated.Premium)

	// The merge must be persisted, not just returned.
	got, err := catalog.Get("1")
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdate_NotFound(t *testing.T) {
	catalog, _, _ := newTestCatalog(t)

	name := "X"
	_, err := catalog.Update("missing", RecipeUpdate{Name: &name})
	assert.ErrorIs(t, err, models.ErrRecipeNotFound)
}

func TestDelete(t *testing.T) {
	catalog, _, _ := newTestCatalog(t)

	require.NoError(t, catalog.Delete("1"))

	_, err := catalog.Get("1")
	assert.ErrorIs(t, err, models.ErrRecipeNotFound)

	// Deleting again must fail: the catalog did not shrink.
	assert.ErrorIs(t, catalog.Delete("1"), models.ErrRecipeNotFound)
}

func TestDelete_CascadesIntoEveryCookbook(t *testing.T) {
	catalog, cookbooks, st := newTestCatalog(t)

	require.NoError(t, cookbooks.Add("alice", "1"))
	require.NoError(t, cookbooks.Add("alice", "2"))
	require.NoError(t, cookbooks.Add("bob", "1"))

	require.NoError(t, catalog.Delete("1"))

	cookbook, err := st.Cookbook()
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, cookbook["alice"])
	assert.Empty(t, cookbook["bob"])

	forAlice, err := cookbooks.GetForUser("alice")
	require.NoError(t, err)
	require.Len(t, forAlice, 1)
	assert.Equal(t, "2", forAlice[0].ID)
}
