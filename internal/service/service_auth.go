package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// emailField is the queryable field name used for account lookups.
const emailField = "email"

// authService is the concrete implementation of [AuthService].
//
// It delegates persistence and password hashing to [UserService], the
// single place where plaintext becomes a bcrypt hash, and owns the JWT
// token lifecycle.
type authService struct {
	// users is the CRUD service every account operation goes through.
	users UserService

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// [UserService] and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users UserService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:         users,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// SignUp registers a new user account.
//
// The email is looked up first: an existing account yields
// [store.ErrEmailAlreadyExists] (mapped to 409 by the handler). Otherwise
// the account is created through [UserService.CreateUser], which hashes
// the password.
func (a *authService) SignUp(ctx context.Context, payload models.UserPayload) (models.User, error) {
	log := logger.FromContext(ctx)

	if payload.Email == nil || payload.Password == nil {
		log.Error().Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.users.FindUserBy(ctx, emailField, *payload.Email)
	switch {
	case err == nil:
		log.Warn().Str("email", *payload.Email).Msg("signup attempt for an existing email")
		return models.User{}, store.ErrEmailAlreadyExists
	case errors.Is(err, store.ErrUserNotFound):
		// email is free, proceed
	default:
		log.Err(err).Msg("user lookup by email failed")
		return models.User{}, fmt.Errorf("user lookup by email failed: %w", err)
	}

	registeredUser, err := a.users.CreateUser(ctx, payload)
	if err != nil {
		log.Err(err).Str("email", *payload.Email).Msg("signup user creation ended with error")
		return models.User{}, fmt.Errorf("signup user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The account is looked up by email; absence surfaces as
// [store.ErrUserNotFound] (mapped to 403 by the handler). The supplied
// password is compared against the stored bcrypt hash in constant time;
// a mismatch yields [ErrWrongPassword] (mapped to 401).
// A failed comparison terminates the flow: no token is issued.
func (a *authService) Login(ctx context.Context, payload models.UserPayload) (models.User, error) {
	log := logger.FromContext(ctx)

	if payload.Email == nil || payload.Password == nil {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.users.FindUserBy(ctx, emailField, *payload.Email)
	if err != nil {
		log.Err(err).Str("email", *payload.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(*payload.Password)); err != nil {
		log.Warn().Str("id", foundUser.ID.String()).Str("email", foundUser.Email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, the user's email as the
// "email" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Signature, issuer and expiry failures (everything the JWT library
// classifies as an invalid token) are normalised to
// [ErrTokenIsExpiredOrInvalid] so the auth middleware can answer 401
// without inspecting low-level JWT errors. Failures outside that class
// (e.g. an unverifiable token due to an internal keyfunc fault) are
// returned wrapped and surface as 500.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if isTokenInvalidity(err) {
			return models.Token{}, ErrTokenIsExpiredOrInvalid
		}

		return models.Token{}, fmt.Errorf("token verification failed: %w", err)
	}

	return token, nil
}

// isTokenInvalidity reports whether err represents a plain invalid or
// expired token, as opposed to an internal verification failure.
func isTokenInvalidity(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired) ||
		errors.Is(err, jwt.ErrTokenMalformed) ||
		errors.Is(err, jwt.ErrTokenSignatureInvalid) ||
		errors.Is(err, jwt.ErrTokenInvalidClaims) ||
		errors.Is(err, jwt.ErrTokenNotValidYet)
}
