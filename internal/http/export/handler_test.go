package export_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/midas/internal/catalog"
	"github.com/MrJamesThe3rd/midas/internal/http/export"
	"github.com/MrJamesThe3rd/midas/internal/page"
	"github.com/MrJamesThe3rd/midas/internal/wishlist"
)

const bom = "\xEF\xBB\xBF"

func setup(t *testing.T) (*catalog.MockRepository, *wishlist.MockRepository, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	catalogRepo := catalog.NewMockRepository(ctrl)
	wishlistRepo := wishlist.NewMockRepository(ctrl)

	r := chi.NewRouter()
	r.Route("/export", export.NewHandler(catalog.NewService(catalogRepo), wishlist.NewService(wishlistRepo)).Routes)

	return catalogRepo, wishlistRepo, r
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestHandler_Categories(t *testing.T) {
	catalogRepo, _, h := setup(t)

	catalogRepo.EXPECT().ListCategories(gomock.Any(), page.Request{}).Return([]*catalog.Category{
		{Code: catalog.CodeLeisure, Name: "Lazer", Description: "Cinema; bares"},
		{Code: catalog.CodeFixedExpense, Name: "Moradia"},
	}, 2, nil)

	rec := get(h, "/export/categories")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename="categories_\d{8}\.csv"$`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, bom+"code;name;description\nLAZ;Lazer;\"Cinema; bares\"\nDES;Moradia;\n", rec.Body.String())
}

func TestHandler_Wishlist(t *testing.T) {
	_, wishlistRepo, h := setup(t)

	wishlistRepo.EXPECT().ListItems(gomock.Any(), wishlist.ListFilter{}).Return([]*wishlist.Item{
		{Name: "Duna", Kind: wishlist.KindBook, Price: decimal.RequireFromString("59.9"), Purchased: true},
		{Name: "Viagem", Kind: wishlist.KindGoal, Price: decimal.NewFromInt(5000), Link: "https://example.com"},
	}, 2, nil)

	rec := get(h, "/export/wishlist")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t,
		bom+"name;kind;price;link;purchased\nDuna;LIV;59.90;;sim\nViagem;SON;5000.00;https://example.com;não\n",
		rec.Body.String())
}

func TestHandler_StoreFailure(t *testing.T) {
	catalogRepo, _, h := setup(t)

	catalogRepo.EXPECT().ListDestinations(gomock.Any(), page.Request{}).Return(nil, 0, errors.New("connection reset"))

	rec := get(h, "/export/destinations")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
	assert.JSONEq(t, `{"detail":"Erro interno do servidor."}`, rec.Body.String())
}
