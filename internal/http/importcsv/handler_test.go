package importcsv_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/midas/internal/catalog"
	"github.com/MrJamesThe3rd/midas/internal/http/importcsv"
	"github.com/MrJamesThe3rd/midas/internal/wishlist"
)

func upload(t *testing.T, h http.Handler, path, content string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if content != "" {
		fw, err := mw.CreateFormFile("file", "sheet.csv")
		require.NoError(t, err)

		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func newRouter(cat catalog.Repository, wl wishlist.Repository) http.Handler {
	r := chi.NewRouter()
	r.Route("/import", importcsv.NewHandler(catalog.NewService(cat), wishlist.NewService(wl)).Routes)

	return r
}

func TestHandler_ImportCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	cat := catalog.NewMockRepository(ctrl)
	wl := wishlist.NewMockRepository(ctrl)

	cat.EXPECT().
		CreateCategories(gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ any, cats []*catalog.Category) error {
			assert.Equal(t, catalog.CodeLeisure, cats[0].Code)
			assert.Equal(t, "Cinema", cats[0].Name)
			assert.Equal(t, catalog.CodeFixedExpense, cats[1].Code)

			return nil
		})

	rec := upload(t, newRouter(cat, wl), "/import/categories", "nome;descricao;codigo\nCinema;Filmes;Lazer\nAluguel;;DES\n")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"imported":2}`, rec.Body.String())
}

func TestHandler_ImportRowErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	cat := catalog.NewMockRepository(ctrl)
	wl := wishlist.NewMockRepository(ctrl)

	rec := upload(t, newRouter(cat, wl), "/import/wishlist", "name;price\nLivro de Go;abc\n")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"2.price"`)
}

func TestHandler_ImportMissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)

	rec := upload(t, newRouter(catalog.NewMockRepository(ctrl), wishlist.NewMockRepository(ctrl)), "/import/destinations", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"file":"Este campo é obrigatório."}`, rec.Body.String())
}
