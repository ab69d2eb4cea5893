package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/pantgram/homidirect/internal/access"
	"github.com/pantgram/homidirect/internal/auth"
	"github.com/pantgram/homidirect/internal/domain"
)

const principalKey = "principal"

// Authenticate verifies the bearer token and stores the principal in the
// request context. Routes behind it always see an identified caller.
func Authenticate(tokens *auth.Service) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": domain.ErrUnauthenticated.Error()},
			)
			return
		}

		p, err := tokens.Verify(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": domain.ErrUnauthenticated.Error()},
			)
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireRole gates a route on its acceptable role set. The denial body
// names the roles that would have been accepted.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		p, _ := Principal(c)
		if err := access.Authorize(p, roles...); err != nil {
			status := http.StatusForbidden
			if errors.Is(err, domain.ErrUnauthenticated) {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, ginext.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}

// Principal returns the authenticated principal stored by Authenticate.
func Principal(c *ginext.Context) (*domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*domain.Principal)
	return p, ok
}
