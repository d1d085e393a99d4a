package tabular

import (
	"fmt"
	"io"
	"strings"

	"github.com/MrJamesThe3rd/midas/internal/catalog"
	"github.com/MrJamesThe3rd/midas/internal/money"
	"github.com/MrJamesThe3rd/midas/internal/validate"
	"github.com/MrJamesThe3rd/midas/internal/wishlist"
)

// column binds a field to the header names it may appear under. The first
// alias is the English name written on export; the rest are accepted on
// import.
type column struct {
	field    string
	aliases  []string
	required bool
}

var (
	colName        = column{field: "name", aliases: []string{"name", "nome"}, required: true}
	colDescription = column{field: "description", aliases: []string{"description", "descricao"}}
	colCode        = column{field: "code", aliases: []string{"code", "codigo", "tipo"}}
	colKind        = column{field: "kind", aliases: []string{"kind", "tipo"}}
	colPrice       = column{field: "price", aliases: []string{"price", "preco", "valor"}, required: true}
	colLink        = column{field: "link", aliases: []string{"link", "url"}}
	colPurchased   = column{field: "purchased", aliases: []string{"purchased", "comprado"}}
)

// layout resolves the columns of a sheet against its header.
type layout map[string]int

func bind(t *Table, cols ...column) (layout, error) {
	l := make(layout, len(cols))
	verr := &validate.Error{}

	for _, c := range cols {
		i, ok := t.Index(c.aliases...)
		if !ok {
			if c.required {
				verr.Add(c.field, fmt.Sprintf("Coluna obrigatória ausente (aceita: %s).", strings.Join(c.aliases, ", ")))
			}

			continue
		}

		l[c.field] = i
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	return l, nil
}

func (l layout) get(r Row, field string) string {
	i, ok := l[field]
	if !ok {
		return ""
	}

	return r.Value(i)
}

func rowField(r Row, field string) string {
	return fmt.Sprintf("%d.%s", r.Line, field)
}

// ParseCategories reads a category sheet. Codes may be given as the code
// ("LAZ") or its label ("Lazer").
func ParseCategories(r io.Reader) ([]catalog.CategoryParams, error) {
	t, err := Read(r)
	if err != nil {
		return nil, err
	}

	l, err := bind(t, colName, colDescription, colCode)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.CategoryParams, 0, len(t.Rows))
	verr := &validate.Error{}

	for _, row := range t.Rows {
		p := catalog.CategoryParams{
			Name:        l.get(row, "name"),
			Description: l.get(row, "description"),
		}

		if raw := l.get(row, "code"); raw != "" {
			code, ok := categoryCode(raw)
			if !ok {
				verr.Add(rowField(row, "code"), fmt.Sprintf("Código desconhecido: %q.", raw))
			}

			p.Code = code
		}

		out = append(out, p)
	}

	return out, verr.Err()
}

func categoryCode(raw string) (catalog.Code, bool) {
	for _, c := range []catalog.Code{
		catalog.CodeFixedExpense, catalog.CodeLeisure, catalog.CodeSavings,
		catalog.CodeInvestment, catalog.CodeGrowth, catalog.CodeContingency,
	} {
		if strings.EqualFold(raw, string(c)) || normalize(raw) == normalize(c.Label()) {
			return c, true
		}
	}

	return "", false
}

func ParseDestinations(r io.Reader) ([]catalog.DestinationParams, error) {
	t, err := Read(r)
	if err != nil {
		return nil, err
	}

	l, err := bind(t, colName, colDescription)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.DestinationParams, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, catalog.DestinationParams{
			Name:        l.get(row, "name"),
			Description: l.get(row, "description"),
		})
	}

	return out, nil
}

// ParseWishlist reads a wishlist sheet. Prices accept both "1.234,56" and
// "1234.56"; purchased accepts sim/não, yes/no, true/false, 1/0 and x.
func ParseWishlist(r io.Reader) ([]wishlist.Params, error) {
	t, err := Read(r)
	if err != nil {
		return nil, err
	}

	l, err := bind(t, colName, colKind, colPrice, colLink, colPurchased)
	if err != nil {
		return nil, err
	}

	out := make([]wishlist.Params, 0, len(t.Rows))
	verr := &validate.Error{}

	for _, row := range t.Rows {
		p := wishlist.Params{
			Name: l.get(row, "name"),
			Link: l.get(row, "link"),
		}

		if raw := l.get(row, "kind"); raw != "" {
			kind, ok := wishlistKind(raw)
			if !ok {
				verr.Add(rowField(row, "kind"), fmt.Sprintf("Tipo desconhecido: %q.", raw))
			}

			p.Kind = kind
		}

		price, err := money.Parse(l.get(row, "price"))
		if err != nil {
			verr.Add(rowField(row, "price"), "Informe um preço válido.")
		}

		p.Price = price

		purchased, ok := parseBool(l.get(row, "purchased"))
		if !ok {
			verr.Add(rowField(row, "purchased"), "Use sim ou não.")
		}

		p.Purchased = purchased

		out = append(out, p)
	}

	return out, verr.Err()
}

func wishlistKind(raw string) (wishlist.Kind, bool) {
	for _, k := range []wishlist.Kind{
		wishlist.KindBook, wishlist.KindGoal, wishlist.KindClothing,
		wishlist.KindShoes, wishlist.KindPerfume, wishlist.KindOther,
	} {
		if strings.EqualFold(raw, string(k)) || normalize(raw) == normalize(k.Label()) {
			return k, true
		}
	}

	return "", false
}

func parseBool(raw string) (bool, bool) {
	switch normalize(raw) {
	case "", "nao", "no", "false", "0", "n":
		return false, true
	case "sim", "yes", "true", "1", "x", "s", "y":
		return true, true
	}

	return false, false
}
