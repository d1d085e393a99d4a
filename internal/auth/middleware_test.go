package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/midas/internal/auth"
)

func TestMiddleware(t *testing.T) {
	c := &clock{t: time.Now()}
	iss := newIssuer(c)

	staffPair, err := iss.Pair(uuid.New(), true)
	require.NoError(t, err)

	userPair, err := iss.Pair(uuid.New(), false)
	require.NoError(t, err)

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found := auth.FromContext(r.Context())
		assert.True(t, found)
		w.WriteHeader(http.StatusNoContent)
	})

	r := chi.NewRouter()
	r.Use(iss.Authenticate)
	r.Get("/me", ok)
	r.With(auth.RequireStaff).Get("/admin", ok)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{name: "NoHeader", path: "/me", want: http.StatusUnauthorized},
		{name: "Bearer", path: "/me", header: "Bearer " + userPair.Access, want: http.StatusNoContent},
		{name: "JWTScheme", path: "/me", header: "JWT " + userPair.Access, want: http.StatusNoContent},
		{name: "UnknownScheme", path: "/me", header: "Token " + userPair.Access, want: http.StatusUnauthorized},
		{name: "RefreshAsAccess", path: "/me", header: "Bearer " + userPair.Refresh, want: http.StatusUnauthorized},
		{name: "AdminNotStaff", path: "/admin", header: "Bearer " + userPair.Access, want: http.StatusForbidden},
		{name: "AdminStaff", path: "/admin", header: "Bearer " + staffPair.Access, want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
