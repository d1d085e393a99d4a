package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/midas/internal/validate"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrNoInstallments = errors.New("outflow has no remaining installments")
)

// Origin is where an inflow of money came from.
type Origin string

const (
	OriginSalary      Origin = "SAL"
	OriginThirteenth  Origin = "DEC"
	OriginVacation    Origin = "FER"
	OriginProject     Origin = "PRO"
	OriginMaintenance Origin = "MAN"
	OriginOther       Origin = "OUT"
)

var originLabels = map[Origin]string{
	OriginSalary:      "Salário",
	OriginThirteenth:  "Décimo terceiro",
	OriginVacation:    "Férias",
	OriginProject:     "Projeto",
	OriginMaintenance: "Manutenção",
	OriginOther:       "Outros",
}

func (o Origin) Valid() bool {
	_, ok := originLabels[o]
	return ok
}

func (o Origin) Label() string {
	return originLabels[o]
}

// Inflow is a recorded receipt of money.
type Inflow struct {
	ID        uuid.UUID
	Origin    Origin
	Amount    decimal.Decimal
	Date      time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (i *Inflow) Validate() error {
	verr := &validate.Error{}

	if !i.Amount.IsPositive() {
		verr.Add("amount", "O valor da entrada deve ser maior que zero.")
	}

	if !i.Origin.Valid() {
		verr.Add("origin", "Escolha uma origem válida.")
	}

	if i.Date.IsZero() {
		verr.Add("date", "Este campo é obrigatório.")
	}

	return verr.Err()
}

// Outflow is a recorded expenditure, possibly one installment of a plan.
type Outflow struct {
	ID                uuid.UUID
	InflowID          uuid.UUID
	Description       string
	Amount            decimal.Decimal
	Installment       *int
	TotalInstallments *int
	ExpenseDate       time.Time
	CategoryID        uuid.UUID
	CategoryName      string // Loaded via JOIN
	DestinationID     *uuid.UUID
	ParentID          *uuid.UUID
	Paid              bool
	Fixed             bool
	Mandatory         *bool
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (o *Outflow) Validate() error {
	verr := &validate.Error{}

	if !o.Amount.IsPositive() {
		verr.Add("amount", "O valor do pagamento deve ser maior que zero.")
	}

	if o.Description == "" {
		verr.Add("description", "Este campo é obrigatório.")
	}

	if o.InflowID == uuid.Nil {
		verr.Add("inflow_id", "Este campo é obrigatório.")
	}

	if o.CategoryID == uuid.Nil {
		verr.Add("category_id", "Este campo é obrigatório.")
	}

	if o.Installment != nil && *o.Installment < 1 {
		verr.Add("installment", "A parcela deve ser maior que zero.")
	}

	if o.TotalInstallments != nil && *o.TotalInstallments < 1 {
		verr.Add("total_installments", "O total de parcelas deve ser maior que zero.")
	}

	if o.Installment != nil && o.TotalInstallments != nil && *o.Installment > *o.TotalInstallments {
		verr.Add("installment", "A parcela não pode ser maior que o total de parcelas.")
	}

	if o.ParentID != nil && *o.ParentID == o.ID && o.ID != uuid.Nil {
		verr.Add("parent_id", "Uma saída não pode referenciar a si mesma.")
	}

	return verr.Err()
}

// HasRemainingInstallments reports whether the outflow is part of a plan that
// has not reached its last installment.
func (o *Outflow) HasRemainingInstallments() bool {
	return o.Installment != nil && o.TotalInstallments != nil && *o.Installment < *o.TotalInstallments
}

// Clone copies the outflow into a new, unpersisted and unpaid record. The
// split-payment link is not carried over.
func (o *Outflow) Clone() *Outflow {
	c := &Outflow{
		InflowID:     o.InflowID,
		Description:  o.Description,
		Amount:       o.Amount,
		ExpenseDate:  o.ExpenseDate,
		CategoryID:   o.CategoryID,
		CategoryName: o.CategoryName,
		Fixed:        o.Fixed,
		Active:       true,
	}

	if o.Installment != nil {
		c.Installment = new(*o.Installment)
	}

	if o.TotalInstallments != nil {
		c.TotalInstallments = new(*o.TotalInstallments)
	}

	if o.DestinationID != nil {
		c.DestinationID = new(*o.DestinationID)
	}

	if o.Mandatory != nil {
		c.Mandatory = new(*o.Mandatory)
	}

	return c
}

// DateOnly truncates t to midnight UTC of its calendar day, which is how
// DATE columns round-trip through the driver.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
