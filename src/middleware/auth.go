package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pokeforge/src/auth"
	"pokeforge/src/logx"
)

// Sentinel reasons for rejecting a request. All three map to the same 401
// response; they are distinguished only for diagnostics.
var (
	ErrUnauthenticated = errors.New("no session cookie")
	ErrUserNotFound    = errors.New("token references unknown user")
)

type AuthMiddleware struct {
	tokens    *auth.TokenService
	userStore *auth.UserStore
}

func NewAuthMiddleware(tokens *auth.TokenService, userStore *auth.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:    tokens,
		userStore: userStore,
	}
}

// RequireAuth resolves the session cookie to a user record and injects it into
// the request context, or rejects the request with 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.resolve(c)
		if err != nil {
			logx.Warn("rejected unauthenticated request",
				"path", c.Request.URL.Path,
				"reason", err.Error(),
			)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) (*auth.User, error) {
	tokenString, err := c.Cookie(auth.SessionCookie)
	if err != nil {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if tokenString == "" {
		return nil, ErrUnauthenticated
	}

	userID, err := m.tokens.Verify(tokenString)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	user, err := m.userStore.FindByID(userID)
	if err != nil {
		// Valid signature but no record, e.g. the store was reset.
		return nil, ErrUserNotFound
	}

	return user, nil
}
