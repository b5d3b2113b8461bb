package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "go-user-keeper-test"
	testSignKey = "test-sign-key"
)

func testUser() models.User {
	return models.User{ID: uuid.New(), Email: "john@example.com"}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	user := testUser()

	token, err := GenerateJWTToken(testIssuer, user, time.Hour, testSignKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, user.ID, token.UserID)
	assert.Equal(t, user.Email, token.Email)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	user := testUser()

	tests := []struct {
		name     string
		issuer   string
		user     models.User
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", user: user, duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, user: user, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, user: user, duration: time.Hour, signKey: ""},
		{name: "nil user id", issuer: testIssuer, user: models.User{}, duration: time.Hour, signKey: testSignKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.user, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	user := testUser()

	issued, err := GenerateJWTToken(testIssuer, user, time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)

	assert.Equal(t, user.ID, parsed.UserID)
	assert.Equal(t, user.Email, parsed.Email)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUser(), -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, "another-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken("another-issuer", testUser(), time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidClaims)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not-a-jwt", testSignKey, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestValidateAndParseJWTToken_NonUUIDSubject(t *testing.T) {
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "42", // legacy numeric subject
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email: "john@example.com",
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(tokenString, testSignKey, testIssuer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "converting subject to user ID")
}
