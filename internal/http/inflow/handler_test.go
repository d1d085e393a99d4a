package inflow_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/midas/internal/http/inflow"
	"github.com/MrJamesThe3rd/midas/internal/ledger"
)

func newRouter(repo ledger.Repository) http.Handler {
	r := chi.NewRouter()
	r.Route("/inflows", inflow.NewHandler(ledger.NewService(repo)).Routes)

	return r
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *ledger.MockRepository)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Success",
			body: `{"origin":"DEC","amount":"1500.00","date":"2025-12-20"}`,
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().CreateInflow(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in *ledger.Inflow) error {
						assert.Equal(t, ledger.OriginThirteenth, in.Origin)
						in.ID = uuid.New()
						return nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "ZeroAmount",
			body:       `{"amount":0}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"amount":"O valor da entrada deve ser maior que zero."}`,
		},
		{
			name:       "MissingAmount",
			body:       `{"origin":"SAL"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"amount":"O valor da entrada deve ser maior que zero."}`,
		},
		{
			name:       "BadOrigin",
			body:       `{"origin":"XYZ","amount":"10"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"origin":"Escolha um valor válido: SAL DEC FER PRO MAN OUT."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := ledger.NewMockRepository(gomock.NewController(t))
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			req := httptest.NewRequest(http.MethodPost, "/inflows/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			newRouter(repo).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
