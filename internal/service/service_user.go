package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of [UserService].
//
// It is a pass-through over [store.UserRepository] for reads and deletes.
// On writes it owns exactly one rule: any plaintext password in the
// payload is replaced with its bcrypt hash before the repository is
// called. Because both the CRUD routes and the signup flow go through
// this service, no call path can persist a plaintext password.
type userService struct {
	userRepository store.UserRepository
	bcryptCost     int
	logger         *logger.Logger
}

// NewUserService constructs a [UserService] wired to the given repository,
// with the bcrypt cost taken from cfg.
func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		bcryptCost:     cfg.BCryptCost,
		logger:         logger,
	}
}

// GetAllUsers returns every stored user.
func (u *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.FindAllUsers(ctx)
}

// GetUserByID returns the user with the given ID, or
// [store.ErrUserNotFound] when it does not exist.
func (u *userService) GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return u.userRepository.FindUserByID(ctx, id)
}

// CreateUser persists a new user. Email and password are mandatory; the
// password is bcrypt-hashed with the configured cost before it reaches
// the repository.
//
// Returns the created user or:
//   - ErrInvalidDataProvided if email or password is absent.
//   - ErrPasswordHashingFailed (wrapped) if bcrypt fails.
//   - A repository error otherwise (e.g. store.ErrEmailAlreadyExists).
func (u *userService) CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	log := logger.FromContext(ctx)

	if payload.Email == nil || payload.Password == nil {
		log.Error().Msg("invalid user data provided: email and password are required")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := u.hashPassword(*payload.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	user := models.User{
		Email:        *payload.Email,
		PasswordHash: hash,
	}
	if payload.Name != nil {
		user.Name = *payload.Name
	}
	if payload.EmailVerified != nil {
		user.EmailVerified = *payload.EmailVerified
	}

	createdUser, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// UpdateUser applies a partial update: only fields present in the payload
// change. A provided password is hashed before persisting, so the update
// path cannot bypass hashing either. An empty payload is a no-op and
// returns the stored record unchanged.
//
// Returns the merged user or:
//   - ErrPasswordHashingFailed (wrapped) if bcrypt fails.
//   - store.ErrUserNotFound if no user has the given ID.
//   - store.ErrEmailAlreadyExists if the new email is already taken.
func (u *userService) UpdateUser(ctx context.Context, id uuid.UUID, payload models.UserPayload) (models.User, error) {
	log := logger.FromContext(ctx)

	if payload.IsEmpty() {
		log.Debug().Str("id", id.String()).Msg("no fields provided, returning stored record")
		return u.userRepository.FindUserByID(ctx, id)
	}

	update := models.UserUpdate{
		Name:          payload.Name,
		Email:         payload.Email,
		EmailVerified: payload.EmailVerified,
	}

	if payload.Password != nil {
		hash, err := u.hashPassword(*payload.Password)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
		}
		update.PasswordHash = &hash
	}

	updatedUser, err := u.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// DeleteUser removes the user with the given ID, returning the deleted
// record or [store.ErrUserNotFound].
func (u *userService) DeleteUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	return u.userRepository.DeleteUser(ctx, id)
}

// FindUserBy returns the first user whose field equals value.
func (u *userService) FindUserBy(ctx context.Context, field string, value any) (models.User, error) {
	return u.userRepository.FindUserBy(ctx, field, value)
}

// hashPassword computes the bcrypt hash of a plaintext password using the
// configured cost factor.
func (u *userService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
