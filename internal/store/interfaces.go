package store

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository is the persistence contract for user records.
//
// Absent records are signaled with [ErrUserNotFound] (matched via
// errors.Is), never with an empty struct; any other error indicates a
// connectivity or query-execution failure.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record with
	// the server-assigned ID and timestamps.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the user with the given ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)

	// FindAllUsers returns every stored user.
	FindAllUsers(ctx context.Context) ([]models.User, error)

	// FindUserBy returns the first user whose field equals value.
	// Only allow-listed fields are queryable; others yield ErrUnknownField.
	FindUserBy(ctx context.Context, field string, value any) (models.User, error)

	// UpdateUser applies a partial merge: only non-nil fields of update
	// change, all other columns retain their prior values. Returns the
	// merged record.
	UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the user with the given ID and returns the
	// deleted record.
	DeleteUser(ctx context.Context, id uuid.UUID) (models.User, error)
}
