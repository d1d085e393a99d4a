// Package wishlist tracks things the user wants to buy and whether they
// already did.
package wishlist

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/midas/internal/validate"
)

var ErrNotFound = errors.New("wishlist item not found")

type Kind string

const (
	KindBook     Kind = "LIV"
	KindGoal     Kind = "SON"
	KindClothing Kind = "ROP"
	KindShoes    Kind = "TEN"
	KindPerfume  Kind = "PER"
	KindOther    Kind = "OUT"
)

var kindLabels = map[Kind]string{
	KindBook:     "Livro",
	KindGoal:     "Sonho",
	KindClothing: "Roupa",
	KindShoes:    "Tênis",
	KindPerfume:  "Perfume",
	KindOther:    "Outros",
}

func (k Kind) Valid() bool {
	_, ok := kindLabels[k]
	return ok
}

func (k Kind) Label() string {
	return kindLabels[k]
}

type Item struct {
	ID        uuid.UUID
	Name      string
	Kind      Kind
	Price     decimal.Decimal
	Link      string
	Purchased bool
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (i *Item) Validate() error {
	verr := &validate.Error{}

	verr.Text("name", i.Name, 50)

	if !i.Kind.Valid() {
		verr.Add("kind", "Escolha um tipo válido.")
	}

	if !i.Price.IsPositive() {
		verr.Add("price", "O preço deve ser maior que zero.")
	}

	if i.Link != "" && !validLink(i.Link) {
		verr.Add("link", "Insira uma URL válida.")
	}

	return verr.Err()
}

func validLink(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
