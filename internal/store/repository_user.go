package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles all user CRUD operations against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Insert returning no row → wrapped [ErrExecutingQuery].
//   - Any other driver or scan error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.EmailVerified, user.PasswordHash)

	var created models.User
	if err := scanUser(row, &created); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email already taken")
			return models.User{}, ErrEmailAlreadyExists
		}

		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: insert returned no row", ErrExecutingQuery)
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByID retrieves a user record by its identifier.
//
// Error handling:
//   - No matching row → [ErrUserNotFound] (absence, not failure).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, id)

	var found models.User
	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Str("id", id.String()).Msg("error finding user by id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindAllUsers retrieves every stored user ordered by creation time.
//
// An empty table yields an empty (non-nil) slice, not an error.
func (r *userRepository) FindAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindAllUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			log.Err(err).Str("func", "*userRepository.FindAllUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindAllUsers").Msg("error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return users, nil
}

// FindUserBy retrieves the first user whose field equals value. The field
// is a JSON name resolved through the [queryableColumns] allow-list; the
// query itself is built with squirrel.
//
// Error handling:
//   - Field outside the allow-list → [ErrUnknownField].
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserBy(ctx context.Context, field string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByQuery(field, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserBy").Str("field", field).Msg("failed to build query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var found models.User
	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserBy").Str("field", field).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateUser applies a partial merge to the user with the given ID: only
// fields provided in update change, every other column keeps its prior
// value. The UPDATE is built dynamically with squirrel and returns the
// merged row, so callers observe the canonical post-update state.
//
// Error handling:
//   - Empty update → wrapped [ErrBuildingSQLQuery].
//   - No matching row → [ErrUserNotFound].
//   - PostgreSQL unique_violation (23505) on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("id", id.String()).Msg("failed to build update query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.User
	if err := scanUser(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("id", id.String()).Msg("error updating user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes the user with the given ID and returns the deleted
// record via a RETURNING clause.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, deleteUser, id)

	var deleted models.User
	if err := scanUser(row, &deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("id", id.String()).Msg("error deleting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return deleted, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser scans a full users row in [userColumns] order.
func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.EmailVerified,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}
