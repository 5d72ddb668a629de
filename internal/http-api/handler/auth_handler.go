package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard/internal/http-api/dto"
	"jobboard/internal/http-api/middleware"
	"jobboard/internal/http-api/service"
	"jobboard/internal/http-api/session"
)

type AuthHandler struct {
	authService service.AuthService
	sessionTTL  time.Duration
}

func NewAuthHandler(authService service.AuthService, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, sessionTTL: sessionTTL}
}

// RegisterForm GET /auth/register
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "auth/register", gin.H{})
}

// Register creates an account and sends the user to the login page.
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.CredentialsForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithPage(c, http.StatusBadRequest, "The submitted form could not be read.")
		return
	}

	if _, err := h.authService.Register(c.Request.Context(), form); err != nil {
		if flashValidation(c, err) {
			render(c, http.StatusOK, "auth/register", gin.H{"username": form.Username})
			return
		}
		serverError(c, err)
		return
	}

	session.Redirect(c, middleware.LoginPath)
}

// LoginForm GET /auth/login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "auth/login", gin.H{})
}

// Login starts a session for valid credentials.
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.CredentialsForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithPage(c, http.StatusBadRequest, "The submitted form could not be read.")
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), form)
	if err != nil {
		if flashValidation(c, err) {
			render(c, http.StatusOK, "auth/login", gin.H{"username": form.Username})
			return
		}
		serverError(c, err)
		return
	}

	middleware.StartSession(c, token, int(h.sessionTTL.Seconds()))
	session.Redirect(c, "/")
}

// Logout revokes the current token and clears the cookie.
// GET /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), middleware.CurrentClaims(c)); err != nil {
		serverError(c, err)
		return
	}
	middleware.ClearSession(c)
	session.Redirect(c, "/")
}
