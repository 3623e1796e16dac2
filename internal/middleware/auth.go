package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/tickethub-io/tickethub/internal/domain"
	"github.com/tickethub-io/tickethub/internal/handler"
	"github.com/tickethub-io/tickethub/internal/token"
)

// Auth verifies the bearer token and stores the principal on the
// request context. Requests without a valid token are rejected.
func Auth(tokens *token.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		principal, ok := verify(c, tokens)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required"},
			)
			return
		}

		c.Set(handler.PrincipalKey, principal)
		c.Next()
	}
}

// OptionalAuth attaches the principal when a valid token is present
// but lets anonymous requests through. Used on public read endpoints
// where admins see more.
func OptionalAuth(tokens *token.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if principal, ok := verify(c, tokens); ok {
			c.Set(handler.PrincipalKey, principal)
		}
		c.Next()
	}
}

// AdminOnly requires an authenticated admin principal. It must run
// after Auth.
func AdminOnly() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		v, ok := c.Get(handler.PrincipalKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required"},
			)
			return
		}

		principal, ok := v.(domain.Principal)
		if !ok || !principal.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": domain.ErrForbidden.Error()},
			)
			return
		}

		c.Next()
	}
}

func verify(c *ginext.Context, tokens *token.Manager) (domain.Principal, bool) {
	header := c.Request.Header.Get("Authorization")
	bearer, found := strings.CutPrefix(header, "Bearer ")
	if !found || bearer == "" {
		return domain.Principal{}, false
	}

	principal, err := tokens.Verify(bearer)
	if err != nil {
		return domain.Principal{}, false
	}

	return *principal, true
}
