package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/midas/internal/auth"
	authhttp "github.com/MrJamesThe3rd/midas/internal/http/auth"
	"github.com/MrJamesThe3rd/midas/internal/user"
)

func setup(t *testing.T) (*user.MockRepository, *auth.Issuer, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := user.NewMockRepository(ctrl)
	issuer := auth.NewIssuer("segredo", "MIDAS", time.Hour, 24*time.Hour)

	r := chi.NewRouter()
	r.Route("/token", authhttp.NewHandler(user.NewService(repo, user.WithHashCost(bcrypt.MinCost)), issuer).Routes)

	return repo, issuer, r
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func account(t *testing.T, password string) *user.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &user.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", PasswordHash: string(hash), Active: true}
}

func TestHandler_Obtain(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *user.MockRepository)
		wantStatus int
		wantDetail string
	}{
		{
			name: "Success",
			body: `{"email":"Ana@Example.com","password":"segredo123"}`,
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(account(t, "segredo123"), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "WrongPassword",
			body: `{"email":"ana@example.com","password":"errada"}`,
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(account(t, "segredo123"), nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Nenhuma conta ativa encontrada com as credenciais fornecidas.",
		},
		{
			name: "UnknownEmail",
			body: `{"email":"ninguem@example.com","password":"segredo123"}`,
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().GetByEmail(gomock.Any(), "ninguem@example.com").Return(nil, user.ErrNotFound)
			},
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Nenhuma conta ativa encontrada com as credenciais fornecidas.",
		},
		{
			name:       "MissingPassword",
			body:       `{"email":"ana@example.com"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, issuer, h := setup(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			rec := post(t, h, "/token/obtain", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var got map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, got["detail"])
			}

			if tt.wantStatus == http.StatusOK {
				access, ok := got["access"].(string)
				require.True(t, ok)

				claims, err := issuer.Parse(access, auth.TokenAccess)
				require.NoError(t, err)
				assert.False(t, claims.Staff)

				refresh, ok := got["refresh"].(string)
				require.True(t, ok)

				_, err = issuer.Parse(refresh, auth.TokenRefresh)
				assert.NoError(t, err)
			}
		})
	}
}

func TestHandler_Refresh(t *testing.T) {
	tests := []struct {
		name       string
		refresh    func(pair auth.Pair) string
		setupMock  func(m *user.MockRepository, id uuid.UUID)
		wantStatus int
		wantStaff  bool
	}{
		{
			name:    "StillStaff",
			refresh: func(p auth.Pair) string { return p.Refresh },
			setupMock: func(m *user.MockRepository, id uuid.UUID) {
				m.EXPECT().Get(gomock.Any(), id).Return(&user.User{ID: id, Staff: true, Active: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantStaff:  true,
		},
		{
			name:    "Demoted",
			refresh: func(p auth.Pair) string { return p.Refresh },
			setupMock: func(m *user.MockRepository, id uuid.UUID) {
				m.EXPECT().Get(gomock.Any(), id).Return(&user.User{ID: id, Staff: false, Active: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantStaff:  false,
		},
		{
			name:    "Deactivated",
			refresh: func(p auth.Pair) string { return p.Refresh },
			setupMock: func(m *user.MockRepository, id uuid.UUID) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, user.ErrNotFound)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "AccessTokenRejected",
			refresh:    func(p auth.Pair) string { return p.Access },
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, issuer, h := setup(t)
			id := uuid.New()

			if tt.setupMock != nil {
				tt.setupMock(repo, id)
			}

			pair, err := issuer.Pair(id, true)
			require.NoError(t, err)

			rec := post(t, h, "/token/refresh", `{"refresh":"`+tt.refresh(pair)+`"}`)
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus != http.StatusOK {
				assert.JSONEq(t, `{"detail":"O token é inválido ou expirado."}`, rec.Body.String())
				return
			}

			var got map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

			claims, err := issuer.Parse(got["access"], auth.TokenAccess)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStaff, claims.Staff)
		})
	}
}

func TestHandler_Verify(t *testing.T) {
	_, issuer, h := setup(t)

	pair, err := issuer.Pair(uuid.New(), false)
	require.NoError(t, err)

	rec := post(t, h, "/token/verify", `{"token":"`+pair.Access+`"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())

	rec = post(t, h, "/token/verify", `{"token":"nao.e.token"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"O token é inválido ou expirado."}`, rec.Body.String())
}
