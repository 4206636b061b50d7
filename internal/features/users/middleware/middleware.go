package users_middleware

import (
	users_models "devcollab/internal/features/users/models"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

type SessionResolver interface {
	GetSessionFromToken(token string) (*users_models.Session, error)
}

// SessionMiddleware resolves the bearer token, if any, into a session.
// Missing or unusable tokens leave the request anonymous.
func SessionMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session := users_models.AnonymousSession()

		if token := extractBearerToken(ctx); token != "" {
			if resolved, err := resolver.GetSessionFromToken(token); err == nil {
				session = resolved
			}
		}

		ctx.Set(sessionContextKey, session)
		ctx.Next()
	}
}

// RequireSession rejects anonymous requests; use after SessionMiddleware.
func RequireSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !GetSessionFromContext(ctx).IsAuthenticated() {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}

// GetSessionFromContext never returns nil: requests without a resolved
// session get an anonymous one.
func GetSessionFromContext(ctx *gin.Context) *users_models.Session {
	value, exists := ctx.Get(sessionContextKey)
	if !exists {
		return users_models.AnonymousSession()
	}

	session, ok := value.(*users_models.Session)
	if !ok || session == nil {
		return users_models.AnonymousSession()
	}

	return session
}

func extractBearerToken(ctx *gin.Context) string {
	token := ctx.GetHeader("Authorization")

	// Remove "Bearer " prefix if present
	if strings.HasPrefix(token, "Bearer ") {
		token = token[7:]
	}

	return strings.TrimSpace(token)
}
