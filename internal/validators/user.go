package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/go-user-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldName targets the optional display name of a user.
	FieldName = "name"

	// FieldEmail targets the login identifier of a user.
	FieldEmail = "email"

	// FieldEmailVerified targets the email confirmation flag.
	FieldEmailVerified = "emailVerified"

	// FieldPassword targets the plaintext password supplied by the client.
	FieldPassword = "password"
)

// passwordMinLength is the minimum accepted password length, matching the
// published API contract.
const passwordMinLength = 8

// userSchema validates a [models.UserPayload] against a set of per-field
// requirements. The zero value accepts any payload; the exported
// constructors configure which fields are mandatory.
type userSchema struct {
	// requireEmail makes an absent email field a violation.
	requireEmail bool

	// requirePassword makes an absent password field a violation.
	requirePassword bool
}

// NewUserSchema returns the schema for user creation:
// name and emailVerified optional, email and password required.
func NewUserSchema() Validator {
	return &userSchema{requireEmail: true, requirePassword: true}
}

// NewUserUpdateSchema returns the schema for partial user updates:
// every field optional, constraints applied only to fields that are present.
func NewUserUpdateSchema() Validator {
	return &userSchema{}
}

// NewLoginSchema returns the schema for login requests:
// email and password required.
func NewLoginSchema() Validator {
	return &userSchema{requireEmail: true, requirePassword: true}
}

// NewSignupSchema returns the schema for signup requests:
// name optional, email and password required.
func NewSignupSchema() Validator {
	return &userSchema{requireEmail: true, requirePassword: true}
}

// Validate checks value, which must be a [models.UserPayload] or a pointer
// to one, against the schema. When fields are given, only the named fields
// are checked.
//
// Returns nil when the payload satisfies the schema, a [*SchemaError]
// listing every violation otherwise, or ErrUnsupportedType /
// ErrUnknownField for malformed calls.
func (s *userSchema) Validate(_ context.Context, value any, fields ...string) error {
	var payload models.UserPayload

	switch v := value.(type) {
	case models.UserPayload:
		payload = v
	case *models.UserPayload:
		if v == nil {
			return ErrUnsupportedType
		}
		payload = *v
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldEmailVerified, FieldPassword}
	}

	var violations []Violation
	for _, field := range fields {
		switch field {
		case FieldName, FieldEmailVerified:
			// no constraints beyond JSON type correctness

		case FieldEmail:
			if v, ok := s.checkEmail(payload.Email); !ok {
				violations = append(violations, v)
			}

		case FieldPassword:
			if v, ok := s.checkPassword(payload.Password); !ok {
				violations = append(violations, v)
			}

		default:
			return ErrUnknownField
		}
	}

	if len(violations) > 0 {
		return &SchemaError{Violations: violations}
	}

	return nil
}

func (s *userSchema) checkEmail(email *string) (Violation, bool) {
	if email == nil {
		if s.requireEmail {
			return Violation{Field: FieldEmail, Reason: ReasonRequired}, false
		}
		return Violation{}, true
	}

	if _, err := mail.ParseAddress(*email); err != nil {
		return Violation{Field: FieldEmail, Reason: ReasonInvalidEmail}, false
	}

	return Violation{}, true
}

func (s *userSchema) checkPassword(password *string) (Violation, bool) {
	if password == nil {
		if s.requirePassword {
			return Violation{Field: FieldPassword, Reason: ReasonRequired}, false
		}
		return Violation{}, true
	}

	if len(*password) < passwordMinLength {
		return Violation{Field: FieldPassword, Reason: ReasonPasswordShort}, false
	}

	return Violation{}, true
}
