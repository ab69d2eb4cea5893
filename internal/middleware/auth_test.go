package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/pantgram/homidirect/internal/auth"
	"github.com/pantgram/homidirect/internal/domain"
)

func setupAuthRouter(t *testing.T, tokens *auth.Service) http.Handler {
	t.Helper()
	r := ginext.New("test")
	authed := r.Group("/", Authenticate(tokens))
	{
		authed.GET("/me", func(c *ginext.Context) {
			p, _ := Principal(c)
			c.JSON(http.StatusOK, ginext.H{"id": p.ID})
		})
		authed.POST("/landlord-only",
			RequireRole(domain.RoleLandlord, domain.RoleBoth),
			func(c *ginext.Context) {
				c.Status(http.StatusNoContent)
			},
		)
	}
	return r
}

func TestAuthenticate(t *testing.T) {
	tokens, err := auth.NewService("test-secret", time.Hour)
	require.NoError(t, err)
	r := setupAuthRouter(t, tokens)

	token, err := tokens.Issue(&domain.User{ID: 5, Email: "tenant@example.com", Role: domain.RoleTenant})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	tokens, err := auth.NewService("test-secret", time.Hour)
	require.NoError(t, err)
	r := setupAuthRouter(t, tokens)

	cases := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleLandlord, http.StatusNoContent},
		{domain.RoleBoth, http.StatusNoContent},
		{domain.RoleAdmin, http.StatusNoContent},
		{domain.RoleTenant, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			token, err := tokens.Issue(&domain.User{ID: 5, Role: tc.role})
			require.NoError(t, err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/landlord-only", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
