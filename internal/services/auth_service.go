package services

import (
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/recetasnicas/recipebook-be/internal/models"
	"github.com/recetasnicas/recipebook-be/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceProvider defines the interface for account services.
type AuthServiceProvider interface {
	Register(email, password string) (models.User, error)
	Login(email, password string) (models.User, error)
}

// AuthService provides registration and credential verification.
type AuthService struct {
	store      *store.Store
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(st *store.Store, bcryptCost int) *AuthService {
	return &AuthService{store: st, bcryptCost: bcryptCost}
}

// Register creates a new user, hashing their password. The email must not be
// registered yet (exact, case-sensitive match).
func (s *AuthService) Register(email, password string) (models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created models.User
	err = s.store.UpdateUsers(func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Email == email {
				return nil, models.ErrEmailTaken
			}
		}
		created = models.User{
			ID:           ulid.Make().String(),
			Email:        email,
			PasswordHash: string(hashed),
		}
		return append(users, created), nil
	})
	if err != nil {
		return models.User{}, err
	}

	// Return user without password hash
	created.PasswordHash = ""
	return created, nil
}

// Login verifies a user's credentials. An unknown email and a wrong password
// both return ErrInvalidCredentials; the caller cannot tell which check
// failed.
func (s *AuthService) Login(email, password string) (models.User, error) {
	users, err := s.store.Users()
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return models.User{}, models.ErrInvalidCredentials
		}
		u.PasswordHash = ""
		return u, nil
	}
	return models.User{}, models.ErrInvalidCredentials
}
