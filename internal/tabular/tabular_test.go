package tabular_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/midas/internal/catalog"
	"github.com/MrJamesThe3rd/midas/internal/tabular"
	"github.com/MrJamesThe3rd/midas/internal/validate"
	"github.com/MrJamesThe3rd/midas/internal/wishlist"
)

const destinationsSheet = "Nome;Descrição\nNubank;Cartão roxo\n\nItaú;Conta salário\n"

func mustEncode(t *testing.T, s string, enc interface{ String(string) (string, error) }) []byte {
	t.Helper()

	out, err := enc.String(s)
	require.NoError(t, err)

	return []byte(out)
}

func TestRead_Encodings(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{name: "UTF8", input: []byte(destinationsSheet)},
		{name: "UTF8BOM", input: append([]byte{0xEF, 0xBB, 0xBF}, destinationsSheet...)},
		{name: "Windows1252", input: mustEncode(t, destinationsSheet, charmap.Windows1252.NewEncoder())},
		{name: "UTF16LE", input: mustEncode(t, destinationsSheet, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := tabular.Read(bytes.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, []string{"Nome", "Descrição"}, table.Header)
			require.Len(t, table.Rows, 2)

			i, ok := table.Index("descricao")
			require.True(t, ok)
			assert.Equal(t, "Cartão roxo", table.Rows[0].Value(i))
			assert.Equal(t, "Conta salário", table.Rows[1].Value(i))
			assert.Equal(t, 4, table.Rows[1].Line)
		})
	}
}

func TestRead_Delimiters(t *testing.T) {
	for name, input := range map[string]string{
		"Comma":     "name,description\n\"Mercado, feira\",Comida\n",
		"Semicolon": "name;description\nMercado, feira;Comida\n",
		"Tab":       "name\tdescription\nMercado, feira\tComida\n",
	} {
		t.Run(name, func(t *testing.T) {
			table, err := tabular.Read(strings.NewReader(input))
			require.NoError(t, err)
			require.Len(t, table.Rows, 1)
			assert.Equal(t, "Mercado, feira", table.Rows[0].Value(0))
		})
	}
}

func TestRead_Empty(t *testing.T) {
	_, err := tabular.Read(strings.NewReader("\n \n"))
	assert.ErrorIs(t, err, tabular.ErrEmpty)
}

func TestParseCategories(t *testing.T) {
	got, err := tabular.ParseCategories(strings.NewReader("Código;Nome;Descrição\nLAZ;Cinema;\nlazer;Shows;ao vivo\n;Aluguel;\n"))
	require.NoError(t, err)

	assert.Equal(t, []catalog.CategoryParams{
		{Code: catalog.CodeLeisure, Name: "Cinema"},
		{Code: catalog.CodeLeisure, Name: "Shows", Description: "ao vivo"},
		{Name: "Aluguel"},
	}, got)

	_, err = tabular.ParseCategories(strings.NewReader("codigo;nome\nZZZ;Algo\n"))
	verr, ok := validate.As(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "2.code")

	_, err = tabular.ParseCategories(strings.NewReader("codigo;descricao\nLAZ;sem nome\n"))
	verr, ok = validate.As(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "name")
}

func TestParseWishlist(t *testing.T) {
	sheet := "nome;tipo;preço;link;comprado\n" +
		"Duna;Livro;59,90;https://example.com/duna;não\n" +
		"Perfume;PER;1.234,56;;sim\n" +
		"Viagem;Sonho;caro;;talvez\n"

	_, err := tabular.ParseWishlist(strings.NewReader(sheet))
	verr, ok := validate.As(err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"4.price":     "Informe um preço válido.",
		"4.purchased": "Use sim ou não.",
	}, verr.Fields)

	got, err := tabular.ParseWishlist(strings.NewReader(strings.Join(strings.Split(sheet, "\n")[:3], "\n")))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, wishlist.KindBook, got[0].Kind)
	assert.True(t, got[0].Price.Equal(decimal.RequireFromString("59.90")))
	assert.False(t, got[0].Purchased)
	assert.Equal(t, wishlist.KindPerfume, got[1].Kind)
	assert.True(t, got[1].Price.Equal(decimal.RequireFromString("1234.56")))
	assert.True(t, got[1].Purchased)
}

func TestWriter_WishlistRoundTrip(t *testing.T) {
	items := []*wishlist.Item{
		{Name: "Tênis de corrida", Kind: wishlist.KindShoes, Price: decimal.RequireFromString("399.9"), Purchased: true},
		{Name: "Duna", Kind: wishlist.KindBook, Price: decimal.NewFromInt(60), Link: "https://example.com/duna"},
	}

	var buf bytes.Buffer
	require.NoError(t, tabular.NewWriter(&buf).Wishlist(items))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, buf.String(), "name;kind;price;link;purchased\n")

	got, err := tabular.ParseWishlist(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i, p := range got {
		assert.Equal(t, items[i].Name, p.Name)
		assert.Equal(t, items[i].Kind, p.Kind)
		assert.True(t, items[i].Price.Equal(p.Price))
		assert.Equal(t, items[i].Link, p.Link)
		assert.Equal(t, items[i].Purchased, p.Purchased)
	}
}
