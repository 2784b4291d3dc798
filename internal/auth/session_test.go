package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/karmic-solutions/canteen-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		ID:         "user-1",
		Name:       "Priya Sharma",
		Email:      "jane@karmic.solutions",
		Role:       models.RoleEmployee,
		Department: "Engineering",
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := CreateSessionToken("test-secret", testUser())
	require.NoError(t, err)
	assert.Contains(t, token, ".") // JWT has dots

	claims, err := VerifySessionToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, models.RoleEmployee, claims.Role)
	assert.Equal(t, "jane@karmic.solutions", claims.Email)
	assert.Equal(t, "Priya Sharma", claims.Name)
	assert.Equal(t, "Engineering", claims.Department)

	// Expiry is the fixed 7-day TTL, give or take clock skew in the test
	require.NotNil(t, claims.ExpiresAt)
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, SessionTTL.Seconds(), ttl.Seconds(), 60)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := CreateSessionToken("secret-a", testUser())
	require.NoError(t, err)

	claims, err := VerifySessionToken("secret-b", token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	expired := &SessionClaims{
		Role:  models.RoleAdmin,
		Email: "admin@karmic.solutions",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-2",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := VerifySessionToken("test-secret", tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	for _, bad := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		claims, err := VerifySessionToken("test-secret", bad)
		assert.Error(t, err, "token %q should be rejected", bad)
		assert.Nil(t, claims)
	}
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	anonymous := &SessionClaims{
		Role: models.RoleEmployee,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, anonymous).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := VerifySessionToken("test-secret", tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
