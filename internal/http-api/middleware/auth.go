package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/http-api/models"
	"jobboard/internal/http-api/service"
	"jobboard/internal/http-api/session"
)

const (
	// SessionCookie holds the signed session token.
	SessionCookie = "session"
	LoginPath     = "/auth/login"

	userKey   = "user"
	claimsKey = "claims"
)

// LoadUser resolves the session cookie, if any, to the logged-in user. An
// invalid or revoked token is dropped and the request continues anonymously.
func LoadUser(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, claims, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidToken) {
				slog.ErrorContext(c.Request.Context(), "Failed to load session user", "error", err)
			}
			ClearSession(c)
			c.Next()
			return
		}

		c.Set(userKey, user)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			session.Redirect(c, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the logged-in user or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// CurrentClaims returns the claims of the session token or nil.
func CurrentClaims(c *gin.Context) *service.SessionClaims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*service.SessionClaims); ok {
			return claims
		}
	}
	return nil
}

// StartSession stores a freshly issued token in the session cookie.
func StartSession(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", false, true)
}

func ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
