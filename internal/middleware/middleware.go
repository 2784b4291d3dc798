package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/karmic-solutions/canteen-api/internal/auth"
	"github.com/karmic-solutions/canteen-api/internal/models"
	"github.com/karmic-solutions/canteen-api/internal/services"
)

// Context keys set by SessionAuth for downstream handlers
const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
	CtxUserKey     = "currentUser"
)

// SessionAuth resolves the session for each request: the kc_session cookie
// first, then an Authorization Bearer header when no cookie is present. The
// first failing source wins; there is no further fallback. A verified token
// must also resolve to a live user, otherwise the request has no session.
//
// Unauthenticated browser navigations are redirected to the login page (the
// cookie is cleared when a bad token was presented); API callers get a
// structured 401 instead.
func SessionAuth(jwtSecret string, users services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, fromCookie := resolveToken(c)
		if token == "" {
			rejectUnauthenticated(c, false)
			return
		}

		claims, err := auth.VerifySessionToken(jwtSecret, token)
		if err != nil {
			// Bad signature, malformed payload or expired: all collapse
			// to "no session", never a partial identity
			rejectUnauthenticated(c, fromCookie)
			return
		}

		user, err := users.GetByID(claims.Subject)
		if err != nil {
			rejectUnauthenticated(c, fromCookie)
			return
		}

		c.Set(CtxUserIDKey, user.ID)
		c.Set(CtxUserRoleKey, string(user.Role))
		c.Set(CtxUserKey, user)

		c.Next()
	}
}

// RequireRole rejects principals whose session role does not match. It must
// run after SessionAuth. Admin-only routes fail closed with 403 rather than
// degrading to partial data.
func RequireRole(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxUserRoleKey)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		if role != string(requiredRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session user placed in the context by SessionAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(CtxUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// resolveToken prefers the session cookie and falls back to the Authorization
// header's Bearer scheme only when no cookie is present.
func resolveToken(c *gin.Context) (token string, fromCookie bool) {
	if cookie, err := c.Cookie(auth.SessionCookieName); err == nil && cookie != "" {
		return cookie, true
	}

	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], false
}

// rejectUnauthenticated ends the request for a missing or invalid session.
// Browser navigations are sent to the login page; API calls get JSON.
func rejectUnauthenticated(c *gin.Context, clearCookie bool) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		if clearCookie {
			c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
		}
		target := "/login?redirect=" + url.QueryEscape(c.Request.URL.Path)
		c.Redirect(http.StatusFound, target)
		c.Abort()
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	c.Abort()
}
