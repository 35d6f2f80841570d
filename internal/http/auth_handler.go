package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/i18n"
	"github.com/guttosm/move-labels/internal/middleware"
	"github.com/guttosm/move-labels/internal/service"
)

// SessionCookieConfig describes the session cookie written on login.
type SessionCookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

func (s SessionCookieConfig) name() string {
	if s.Name == "" {
		return middleware.DefaultSessionCookie
	}
	return s.Name
}

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService    service.AuthService
	loggingService service.LoggingService
	cookie         SessionCookieConfig
}

// NewAuthHandler creates a new authentication handler. loggingService may
// be nil.
func NewAuthHandler(authService service.AuthService, loggingService service.LoggingService, cookie SessionCookieConfig) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		loggingService: loggingService,
		cookie:         cookie,
	}
}

// Login handles POST /api/v1/auth/login requests.
//
// @Summary      Login
// @Description  Checks the credentials, sets the HttpOnly session cookie and returns the session token for API clients.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse} "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Database unavailable"
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req, ok := bind[dto.LoginRequest](c)
	if !ok {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		action := "login_error"
		if errors.Is(err, service.ErrInvalidCredentials) {
			action = "login_failed"
		}
		middleware.AuditLogError(h.loggingService, c, action, "Login rejected", err, map[string]any{
			"username": req.Username,
		})
		NewResponseBuilder(c).Fail(err)
		return
	}

	maxAge := int(time.Until(resp.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = int(h.cookie.TTL.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.name(), resp.Token, maxAge, "/", "", h.cookie.Secure, true)

	c.Set(middleware.ContextUsername, resp.User.Username)
	middleware.AuditLog(h.loggingService, c, model.ActionLogin, "", map[string]any{
		"username": resp.User.Username,
	})

	NewResponseBuilder(c).SuccessOK(resp)
}

// Logout handles POST /api/v1/auth/logout requests.
//
// @Summary      Logout
// @Description  Clears the session cookie.
// @Tags         Auth
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Successful logout"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Security     SessionCookie
// @Router       /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.name(), "", -1, "/", "", h.cookie.Secure, true)

	middleware.AuditLog(h.loggingService, c, model.ActionLogout, "", nil)

	NewResponseBuilder(c).SuccessOK(map[string]string{"message": "Logged out successfully"})
}

// Me handles GET /api/v1/auth/me requests.
//
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.UserResponse}
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Security     SessionCookie
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.SessionUser(c)
	if !ok {
		NewResponseBuilder(c).Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.UserResponse{ID: user.ID, Username: user.Username})
}
