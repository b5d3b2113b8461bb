package service

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_services.go -package=mock

// UserService exposes the CRUD lifecycle of user records. It is a thin
// orchestration layer over [store.UserRepository] with one business rule
// of its own: plaintext passwords are bcrypt-hashed before they cross the
// persistence boundary, on every call path.
type UserService interface {
	// GetAllUsers returns every stored user.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// GetUserByID returns the user with the given ID.
	GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error)

	// CreateUser hashes the payload password and persists a new user.
	CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error)

	// UpdateUser applies a partial update; only provided fields change.
	// A provided password is hashed before persisting.
	UpdateUser(ctx context.Context, id uuid.UUID, payload models.UserPayload) (models.User, error)

	// DeleteUser removes the user with the given ID.
	DeleteUser(ctx context.Context, id uuid.UUID) (models.User, error)

	// FindUserBy returns the first user whose field equals value.
	FindUserBy(ctx context.Context, field string, value any) (models.User, error)
}

// AuthService handles signup, login and the JWT token lifecycle.
type AuthService interface {
	// SignUp registers a new account: duplicate email is rejected with
	// [store.ErrEmailAlreadyExists], otherwise the user is created
	// through the hashing create path.
	SignUp(ctx context.Context, payload models.UserPayload) (models.User, error)

	// Login authenticates an existing user by email and password.
	Login(ctx context.Context, payload models.UserPayload) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
