// Package catalog holds the lookup records outflows are classified by:
// spending categories and destinations.
package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/midas/internal/validate"
)

var ErrNotFound = errors.New("not found")

// Code is the budget bucket a category belongs to.
type Code string

const (
	CodeFixedExpense Code = "DES"
	CodeLeisure      Code = "LAZ"
	CodeSavings      Code = "ECO"
	CodeInvestment   Code = "INV"
	CodeGrowth       Code = "CRE"
	CodeContingency  Code = "IMP"
)

var codeLabels = map[Code]string{
	CodeFixedExpense: "Despesas fixas",
	CodeLeisure:      "Lazer",
	CodeSavings:      "Economia",
	CodeInvestment:   "Investimento",
	CodeGrowth:       "Crescimento",
	CodeContingency:  "Imprevistos",
}

func (c Code) Valid() bool {
	_, ok := codeLabels[c]
	return ok
}

func (c Code) Label() string {
	return codeLabels[c]
}

type Category struct {
	ID          uuid.UUID
	Code        Code
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c *Category) Validate() error {
	verr := &validate.Error{}

	if !c.Code.Valid() {
		verr.Add("code", "Escolha um código válido.")
	}

	verr.Text("name", c.Name, 50)

	return verr.Err()
}

type Destination struct {
	ID          uuid.UUID
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (d *Destination) Validate() error {
	verr := &validate.Error{}
	verr.Text("name", d.Name, 100)

	return verr.Err()
}
