package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/karmic-solutions/canteen-api/internal/models"
)

const (
	// SessionCookieName is the HTTP-only cookie carrying the session token.
	SessionCookieName = "kc_session"

	// SessionTTL is the fixed lifetime of a session token. There is no
	// server-side revocation list; a leaked token stays valid until expiry.
	SessionTTL = 7 * 24 * time.Hour
)

// SessionClaims is the signed identity embedded in a session token.
type SessionClaims struct {
	Role       models.UserRole `json:"role"`
	Email      string          `json:"email"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	jwt.RegisteredClaims
}

// CreateSessionToken mints an HS256 session token for user with the fixed
// session TTL. The subject claim carries the user id.
func CreateSessionToken(secret string, user *models.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		Role:       user.Role,
		Email:      user.Email,
		Name:       user.Name,
		Department: user.Department,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySessionToken checks signature and expiry and returns the embedded
// claims. Every failure mode (bad signature, malformed payload, expired)
// returns an error; callers must treat any error as "no session" and never
// derive a partial identity from a rejected token.
func VerifySessionToken(secret, tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Validate the signing method to prevent algorithm confusion attacks
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v. Expected HMAC", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims format")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing subject claim")
	}

	return claims, nil
}
