package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the JWT claim set issued by the authentication flow.
//
// It extends the standard registered claims (sub, exp, iat, iss) with the
// user's email so that the token alone identifies the account it was
// issued for. The user id travels in the "sub" claim.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the login identifier of the user the token was issued for.
	Email string `json:"email"`
}

// Token wraps an issued or parsed JWT with convenience accessors for the
// authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// response bodies. UserID and Email are parsed copies of the corresponding
// claims, populated during generation or validation so that callers do not
// re-parse the claim set.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string
	// form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID uuid.UUID `json:"-"`

	// Email is the login identifier extracted from the "email" claim.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
