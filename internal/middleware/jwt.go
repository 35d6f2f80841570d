package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/move-labels/internal/domain/dto"
	"github.com/guttosm/move-labels/internal/domain/model"
	"github.com/guttosm/move-labels/internal/i18n"
	"github.com/guttosm/move-labels/internal/service"
)

// Context keys set by SessionAuth.
const (
	ContextUserID      = "user_id"
	ContextUsername    = "username"
	ContextSessionUser = "session_user"
)

// DefaultSessionCookie is the cookie carrying the session token.
const DefaultSessionCookie = "move_session"

// SessionToken returns the token of the request: the session cookie, or a
// bearer token for API clients.
func SessionToken(c *gin.Context, cookieName string) string {
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// SessionAuth returns a middleware that requires a valid session. The user
// is stored in the gin context and attached to the request context so
// recorded activity carries the username.
func SessionAuth(authService service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		token := SessionToken(c, cookieName)
		if token == "" {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyTokenRequired, locale)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(requestID))
			return
		}

		user, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidToken, locale)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(requestID))
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUsername, user.Username)
		c.Set(ContextSessionUser, user)
		c.Request = c.Request.WithContext(service.WithActor(c.Request.Context(), user.Username))

		c.Next()
	}
}

// SessionUser returns the user stored by SessionAuth.
func SessionUser(c *gin.Context) (*model.SessionUser, bool) {
	v, exists := c.Get(ContextSessionUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*model.SessionUser)
	return user, ok
}
