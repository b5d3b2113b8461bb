package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(user models.User) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "name", "email", "email_verified", "password_hash", "created_at", "updated_at"}).
		AddRow(user.ID, user.Name, user.Email, user.EmailVerified, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Name:         "John",
		Email:        "john@example.com",
		PasswordHash: "$2a$12$hash",
	}

	stored := user
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.EmailVerified, user.PasswordHash).
		WillReturnRows(userRows(stored))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != stored.ID {
		t.Errorf("expected ID=%s, got %s", stored.ID, created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.User{
		ID:    uuid.New(),
		Email: "john@example.com",
	}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(stored.ID).
		WillReturnRows(userRows(stored))

	found, err := repo.FindUserByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != stored.ID {
		t.Errorf("expected ID=%s, got %s", stored.ID, found.ID)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(ctx, id)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindAllUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "email_verified", "password_hash", "created_at", "updated_at"}).
		AddRow(uuid.New(), "John", "john@example.com", false, "hash1", now, now).
		AddRow(uuid.New(), "Jane", "jane@example.com", true, "hash2", now, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(rows)

	users, err := repo.FindAllUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}

func TestFindAllUsers_Empty(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "email_verified", "password_hash", "created_at", "updated_at"})

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(rows)

	users, err := repo.FindAllUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil {
		t.Fatal("expected empty non-nil slice, got nil")
	}
	if len(users) != 0 {
		t.Errorf("expected 0 users, got %d", len(users))
	}
}

func TestFindUserBy_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.User{
		ID:    uuid.New(),
		Email: "john@example.com",
	}

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs(stored.Email).
		WillReturnRows(userRows(stored))

	found, err := repo.FindUserBy(ctx, "email", stored.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != stored.Email {
		t.Errorf("expected email %s, got %s", stored.Email, found.Email)
	}
}

func TestFindUserBy_UnknownField(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	_, err := repo.FindUserBy(ctx, "passwordHash", "secret")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query should reach the database: %v", err)
	}
}

func TestFindUserBy_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserBy(ctx, "email", "ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()
	newName := "John Updated"

	stored := models.User{
		ID:    id,
		Name:  newName,
		Email: "john@example.com",
	}

	mock.ExpectQuery("UPDATE users SET").
		WithArgs(newName, id).
		WillReturnRows(userRows(stored))

	updated, err := repo.UpdateUser(ctx, id, models.UserUpdate{Name: &newName})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != newName {
		t.Errorf("expected name %q, got %q", newName, updated.Name)
	}
}

func TestUpdateUser_EmptyUpdate(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	_, err := repo.UpdateUser(ctx, uuid.New(), models.UserUpdate{})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query should reach the database: %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	newName := "Nobody"

	mock.ExpectQuery("UPDATE users SET").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateUser(ctx, uuid.New(), models.UserUpdate{Name: &newName})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUser_EmailUniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	takenEmail := "taken@example.com"

	mock.ExpectQuery("UPDATE users SET").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateUser(ctx, uuid.New(), models.UserUpdate{Email: &takenEmail})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.User{
		ID:    uuid.New(),
		Email: "john@example.com",
	}

	mock.ExpectQuery("DELETE FROM users").
		WithArgs(stored.ID).
		WillReturnRows(userRows(stored))

	deleted, err := repo.DeleteUser(ctx, stored.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.ID != stored.ID {
		t.Errorf("expected ID=%s, got %s", stored.ID, deleted.ID)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	mock.ExpectQuery("DELETE FROM users").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.DeleteUser(ctx, id)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
