package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID uuid.UUID
	Staff  bool
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// bearer extracts the token from "Bearer <t>" or "JWT <t>".
func bearer(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok {
		return ""
	}

	switch strings.ToLower(scheme) {
	case "bearer", "jwt":
		return strings.TrimSpace(token)
	}

	return ""
}

// Authenticate rejects requests without a valid access token.
func (i *Issuer) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearer(r)
		if raw == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
			http.Error(w, "authentication credentials were not provided", http.StatusUnauthorized)

			return
		}

		claims, err := i.Parse(raw, TokenAccess)
		if err != nil {
			slog.DebugContext(r.Context(), "rejected token", "error", err)
			http.Error(w, "token is invalid or expired", http.StatusUnauthorized)

			return
		}

		id, _ := claims.UserID()
		ctx := WithPrincipal(r.Context(), Principal{UserID: id, Staff: claims.Staff})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireStaff must run after Authenticate.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := FromContext(r.Context())
		if !ok {
			http.Error(w, "authentication credentials were not provided", http.StatusUnauthorized)
			return
		}

		if !p.Staff {
			http.Error(w, "you do not have permission to perform this action", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
