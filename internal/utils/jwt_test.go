package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	testIssuer  = "reel-keeper-test"
	testSignKey = "test-sign-key"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	userID := primitive.NewObjectID()
	issuedAt := time.Now()

	token, err := GenerateJWTToken(testIssuer, userID, issuedAt, 2*time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, fixedClock(issuedAt))
	require.NoError(t, err)
	assert.Equal(t, userID, parsed.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", primitive.NewObjectID(), time.Now(), time.Hour, testSignKey)
	assert.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, primitive.NilObjectID, time.Now(), time.Hour, testSignKey)
	assert.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, primitive.NewObjectID(), time.Now(), 0, testSignKey)
	assert.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, primitive.NewObjectID(), time.Now(), time.Hour, "")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	userID := primitive.NewObjectID()
	issuedAt := time.Now()

	token, err := GenerateJWTToken(testIssuer, userID, issuedAt, 2*time.Hour, testSignKey)
	require.NoError(t, err)

	// move the verification clock past the expiry
	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, fixedClock(issuedAt.Add(2*time.Hour+time.Second)))
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, primitive.NewObjectID(), time.Now(), 2*time.Hour, "other-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, time.Now)
	require.Error(t, err)
	// wrong signature must never be reported as expiry
	assert.NotErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("someone-else", primitive.NewObjectID(), time.Now(), 2*time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, time.Now)
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("Bearer")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)

	_, err = ParseBearerToken("")
	assert.Error(t, err)
}
