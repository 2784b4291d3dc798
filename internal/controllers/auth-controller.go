package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karmic-solutions/canteen-api/internal/auth"
	"github.com/karmic-solutions/canteen-api/internal/middleware"
	"github.com/karmic-solutions/canteen-api/internal/services"
	"golang.org/x/crypto/bcrypt"
)

// AuthController handles login, logout and session introspection.
type AuthController struct {
	userService  services.UserService
	jwtSecret    string
	secureCookie bool
}

// NewAuthController creates a new AuthController. secureCookie should be
// true in production so the session cookie is HTTPS-only.
func NewAuthController(userService services.UserService, jwtSecret string, secureCookie bool) *AuthController {
	return &AuthController{
		userService:  userService,
		jwtSecret:    jwtSecret,
		secureCookie: secureCookie,
	}
}

// Login godoc
// @Summary Log in with email and password
// @Description Verifies credentials and sets the kc_session cookie. The same
// @Description token is returned for clients that prefer bearer auth.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object true "email and password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
		return
	}

	// Unknown email and wrong password produce the same answer so the
	// endpoint does not leak which accounts exist
	user, err := ac.userService.FindByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		return
	}

	token, err := auth.CreateSessionToken(ac.jwtSecret, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to login at this time."})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, token, int(auth.SessionTTL.Seconds()), "/", "", ac.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie. Tokens already handed out stay
// @Description cryptographically valid until natural expiry.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", ac.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me godoc
// @Summary Current session user
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
