package services

import (
	"testing"

	"github.com/recetasnicas/recipebook-be/internal/models"
	"github.com/recetasnicas/recipebook-be/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestRegister_StoresHashedPassword(t *testing.T) {
	st := newTestStore(t)
	svc := NewAuthService(st, bcrypt.MinCost)

	user, err := svc.Register("a@x.com", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Empty(t, user.PasswordHash, "hash must not be returned")

	users, err := st.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NotEqual(t, "pw1", users[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("pw1")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	svc := NewAuthService(st, bcrypt.MinCost)

	_, err := svc.Register("a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Register("a@x.com", "pw2")
	assert.ErrorIs(t, err, models.ErrEmailTaken)

	users, err := st.Users()
	require.NoError(t, err)
	assert.Len(t, users, 1, "the failed attempt must not store a second user")
}

func TestRegister_EmailMatchIsCaseSensitive(t *testing.T) {
	st := newTestStore(t)
	svc := NewAuthService(st, bcrypt.MinCost)

	_, err := svc.Register("a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Register("A@x.com", "pw1")
	assert.NoError(t, err)
}

func TestLogin_Success(t *testing.T) {
	st := newTestStore(t)
	svc := NewAuthService(st, bcrypt.MinCost)

	registered, err := svc.Register("a@x.com", "pw1")
	require.NoError(t, err)

	user, err := svc.Login("a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	st := newTestStore(t)
	svc := NewAuthService(st, bcrypt.MinCost)

	_, err := svc.Register("a@x.com", "pw1")
	require.NoError(t, err)

	_, wrongPassword := svc.Login("a@x.com", "nope")
	_, unknownEmail := svc.Login("b@x.com", "pw1")

	assert.ErrorIs(t, wrongPassword, models.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, models.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}
