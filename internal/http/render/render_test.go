package render_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/midas/internal/catalog"
	"github.com/MrJamesThe3rd/midas/internal/http/render"
	"github.com/MrJamesThe3rd/midas/internal/validate"
)

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "Validation",
			err:      validate.Field("name", "Este campo é obrigatório."),
			wantCode: http.StatusBadRequest,
			wantBody: `{"name":"Este campo é obrigatório."}`,
		},
		{
			name:     "WrappedNotFound",
			err:      fmt.Errorf("get category: %w", catalog.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantBody: `{"detail":"Não encontrado."}`,
		},
		{
			name:     "Internal",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"detail":"Erro interno do servidor."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			render.Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDecode(t *testing.T) {
	type request struct {
		Name string `json:"name" validate:"required"`
	}

	t.Run("Valid", func(t *testing.T) {
		var req request
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Lazer"}`))

		require.NoError(t, render.Decode(httptest.NewRecorder(), r, &req))
		assert.Equal(t, "Lazer", req.Name)
	})

	t.Run("Malformed", func(t *testing.T) {
		var req request
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

		verr, ok := validate.As(render.Decode(httptest.NewRecorder(), r, &req))
		require.True(t, ok)
		assert.Contains(t, verr.Fields, "non_field_errors")
	})

	t.Run("MissingField", func(t *testing.T) {
		var req request
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))

		verr, ok := validate.As(render.Decode(httptest.NewRecorder(), r, &req))
		require.True(t, ok)
		assert.Equal(t, "Este campo é obrigatório.", verr.Fields["name"])
	})
}

func TestList(t *testing.T) {
	page := render.List([]int{1, 2, 3}, 10, func(n int) string { return strings.Repeat("*", n) })

	assert.Equal(t, 10, page.Count)
	assert.Equal(t, []string{"*", "**", "***"}, page.Results)
}

func TestDate(t *testing.T) {
	var d render.Date
	require.NoError(t, d.UnmarshalJSON([]byte(`"2025-02-15"`)))
	assert.Equal(t, time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC), d.Time)

	b, err := render.NewDate(d.Time).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2025-02-15"`, string(b))

	assert.Error(t, d.UnmarshalJSON([]byte(`"15/02/2025"`)))
}
