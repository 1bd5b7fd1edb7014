package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/recipe-service/internal/domain/dto"
	"github.com/guttosm/recipe-service/internal/i18n"
	"github.com/guttosm/recipe-service/internal/logger"
	"github.com/guttosm/recipe-service/internal/session"
)

const (
	// ClientIDKey is the context key for the authenticated client id.
	ClientIDKey ContextKey = "client_id"
	// SessionKey is the context key for the client's session.
	SessionKey ContextKey = "session"
)

// TokenValidator resolves a bearer token to a client id.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// SessionProvider returns the live session of a client.
type SessionProvider interface {
	Acquire(ctx context.Context, clientID string) (*session.Session, error)
}

// SessionAuth returns a middleware that resolves the bearer token to a client
// session. Requests without a valid token are rejected with 401.
func SessionAuth(tokens TokenValidator, sessions SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		abort := func(status int, key string) {
			message := i18n.GetTranslator().Translate(key, locale)
			c.AbortWithStatusJSON(status,
				dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(requestID))
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			abort(http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			abort(http.StatusUnauthorized, i18n.ErrKeyTokenRequired)
			return
		}

		clientID, err := tokens.Validate(tokenString)
		if err != nil {
			abort(http.StatusUnauthorized, i18n.ErrKeyInvalidToken)
			return
		}
		c.Set(string(ClientIDKey), clientID)

		sess, err := sessions.Acquire(c.Request.Context(), clientID)
		if err != nil {
			log := logger.ForClient(clientID)
			log.Error().
				Err(err).
				Str("request_id", requestID).
				Msg("failed to open session")
			abort(http.StatusServiceUnavailable, i18n.ErrKeyStorageFailure)
			return
		}
		c.Set(string(SessionKey), sess)

		c.Next()
	}
}

// GetClientID retrieves the authenticated client id from the gin context.
func GetClientID(c *gin.Context) string {
	if id, exists := c.Get(string(ClientIDKey)); exists {
		if clientID, ok := id.(string); ok {
			return clientID
		}
	}
	return ""
}

// GetSession retrieves the client's session from the gin context.
func GetSession(c *gin.Context) (*session.Session, bool) {
	if v, exists := c.Get(string(SessionKey)); exists {
		if sess, ok := v.(*session.Session); ok {
			return sess, true
		}
	}
	return nil, false
}
