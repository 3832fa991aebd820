package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/stpnv0/RidePooler/internal/domain"
)

// AccountIDKey holds the authenticated account id in the gin context.
const AccountIDKey = "account_id"

// SessionTokenKey holds the raw session token (needed by sign-out).
const SessionTokenKey = "session_token"

type sessionValidator interface {
	Validate(ctx context.Context, token string) (string, error)
}

// Auth resolves the bearer session token to an account id; requests
// without a valid, unexpired session are rejected.
func Auth(sessions sessionValidator) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing session token"},
			)
			return
		}

		accountID, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrSessionExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					ginext.H{"error": "session expired"},
				)
			case errors.Is(err, domain.ErrSessionNotFound):
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					ginext.H{"error": "invalid session token"},
				)
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					ginext.H{"error": "internal server error"},
				)
			}
			return
		}

		c.Set(AccountIDKey, accountID)
		c.Set(SessionTokenKey, token)
		c.Next()
	}
}

func bearerToken(c *ginext.Context) string {
	auth := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
		return token
	}
	return c.GetHeader("X-Session-Token")
}
