package admin_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/midas/internal/http/admin"
	"github.com/MrJamesThe3rd/midas/internal/ledger"
)

func newRouter(repo ledger.Repository) http.Handler {
	r := chi.NewRouter()
	r.Route("/admin/outflows", admin.NewHandler(ledger.NewService(repo)).Routes)

	return r
}

func post(h http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Sum(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	tests := []struct {
		name  string
		body  string
		setup func(repo *ledger.MockRepository)
		want  string
	}{
		{
			name:  "EmptySelection",
			body:  `{"ids":[]}`,
			setup: func(*ledger.MockRepository) {},
			want:  `{"count":0,"total":"0.00","formatted":"R$ 0,00"}`,
		},
		{
			name: "RoundsToCents",
			body: `{"ids":["` + a.String() + `","` + b.String() + `"]}`,
			setup: func(repo *ledger.MockRepository) {
				repo.EXPECT().
					SumOutflows(gomock.Any(), []uuid.UUID{a, b}).
					Return(2, decimal.RequireFromString("120.455"), nil)
			},
			want: `{"count":2,"total":"120.46","formatted":"R$ 120,46"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := ledger.NewMockRepository(ctrl)
			tt.setup(repo)

			rec := post(newRouter(repo), "/admin/outflows/sum", tt.body)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestHandler_MarkPaid(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name string
		path string
		paid bool
	}{
		{name: "Paid", path: "/admin/outflows/mark-paid", paid: true},
		{name: "Unpaid", path: "/admin/outflows/mark-unpaid", paid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := ledger.NewMockRepository(ctrl)

			repo.EXPECT().SetPaid(gomock.Any(), []uuid.UUID{id}, tt.paid).Return(int64(1), nil)

			rec := post(newRouter(repo), tt.path, `{"ids":["`+id.String()+`"]}`)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"updated":1}`, rec.Body.String())
		})
	}
}

func TestHandler_MarkPaid_RequiresIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := ledger.NewMockRepository(ctrl)

	rec := post(newRouter(repo), "/admin/outflows/mark-paid", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ids"`)
}
