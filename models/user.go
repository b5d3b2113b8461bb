package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity managed by the service.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user. It is assigned by the
	// database on creation and immutable afterwards.
	ID uuid.UUID `json:"id"`

	// Name is the optional display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name,omitempty"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// EmailVerified reports whether the user has confirmed ownership of
	// the email address. Defaults to false at creation.
	EmailVerified bool `json:"emailVerified"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never exposed
	// via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the record.
	// Maintained by the store on every update.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserPayload is the request-body shape shared by the user CRUD and
// authentication endpoints. All fields are pointers so that an absent
// field can be distinguished from a zero value; this is what makes
// partial updates possible.
type UserPayload struct {
	// Name is the optional display name.
	Name *string `json:"name,omitempty"`

	// Email is the login identifier. Required for creation, login and
	// signup; optional for partial updates.
	Email *string `json:"email,omitempty"`

	// EmailVerified marks the email address as confirmed. Optional.
	EmailVerified *bool `json:"emailVerified,omitempty"`

	// Password is the plaintext password supplied by the client.
	// It is hashed before it ever reaches the store.
	Password *string `json:"password,omitempty"`
}

// IsEmpty reports whether the payload carries no fields at all.
func (p UserPayload) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.EmailVerified == nil && p.Password == nil
}

// UserUpdate is the store-facing partial-update descriptor. Nil fields are
// left untouched by the update; only provided fields change. Unlike
// UserPayload it carries the password hash, never the plaintext: hashing
// happens before the descriptor is built, so no call path can persist a
// plaintext password.
type UserUpdate struct {
	Name          *string
	Email         *string
	EmailVerified *bool
	PasswordHash  *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.EmailVerified == nil && u.PasswordHash == nil
}
