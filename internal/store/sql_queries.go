package store

import (
	"fmt"

	"github.com/MKhiriev/go-user-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	userColumns = "id, name, email, email_verified, password_hash, created_at, updated_at"

	createUser = `INSERT INTO users (name, email, email_verified, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, email, email_verified, password_hash, created_at, updated_at;`

	findUserByID = `SELECT id, name, email, email_verified, password_hash, created_at, updated_at
    FROM users
    WHERE id = $1;`

	findAllUsers = `SELECT id, name, email, email_verified, password_hash, created_at, updated_at
    FROM users
    ORDER BY created_at;`

	deleteUser = `DELETE FROM users
    WHERE id = $1
    RETURNING id, name, email, email_verified, password_hash, created_at, updated_at;`
)

// queryableColumns maps the JSON field names accepted by FindUserBy to
// their database columns. Filtering on anything else is rejected with
// [ErrUnknownField] before any SQL is built.
var queryableColumns = map[string]string{
	"id":            "id",
	"name":          "name",
	"email":         "email",
	"emailVerified": "email_verified",
}

// psql is the package-wide statement builder configured for PostgreSQL
// ($N) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildFindUserByQuery builds a single-row lookup filtered by one
// allow-listed column.
func buildFindUserByQuery(field string, value any) (string, []any, error) {
	column, ok := queryableColumns[field]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	query, args, err := psql.
		Select("id", "name", "email", "email_verified", "password_hash", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery builds a partial UPDATE: the SET clause contains
// only the fields provided in update, plus updated_at which is always
// refreshed. Returns ErrBuildingSQLQuery when update carries no fields.
func buildUpdateUserQuery(id uuid.UUID, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := psql.Update("users")

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.EmailVerified != nil {
		builder = builder.Set("email_verified", *update.EmailVerified)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
