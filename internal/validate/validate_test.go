package validate_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/midas/internal/validate"
)

type request struct {
	Name   string           `json:"name" validate:"required,max=5"`
	Amount decimal.Decimal  `json:"amount" validate:"gt=0"`
	Price  *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	Kind   string           `json:"kind" validate:"omitempty,oneof=A B"`
}

func TestStruct(t *testing.T) {
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name       string
		req        request
		wantFields []string
	}{
		{
			name: "Valid",
			req:  request{Name: "ok", Amount: decimal.RequireFromString("0.01")},
		},
		{
			name:       "MissingName",
			req:        request{Amount: decimal.NewFromInt(1)},
			wantFields: []string{"name"},
		},
		{
			name:       "ZeroAmount",
			req:        request{Name: "ok"},
			wantFields: []string{"amount"},
		},
		{
			name:       "NegativePointerAmount",
			req:        request{Name: "ok", Amount: decimal.NewFromInt(1), Price: &negative},
			wantFields: []string{"price"},
		},
		{
			name:       "Several",
			req:        request{Name: "too long", Kind: "C"},
			wantFields: []string{"name", "amount", "kind"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.req)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			verr, ok := validate.As(err)
			require.True(t, ok)
			assert.Len(t, verr.Fields, len(tt.wantFields))

			for _, f := range tt.wantFields {
				assert.Contains(t, verr.Fields, f)
			}
		})
	}
}

func TestError(t *testing.T) {
	e := &validate.Error{}
	assert.NoError(t, e.Err())

	e.Add("month", "Essa query é obrigatória.")
	e.Add("month", "ignored")
	e.Add("amount", "bad")

	assert.Equal(t, "Essa query é obrigatória.", e.Fields["month"])
	assert.Equal(t, "validation failed: amount: bad; month: Essa query é obrigatória.", e.Error())

	wrapped := fmt.Errorf("creating inflow: %w", validate.Field("amount", "bad"))

	verr, ok := validate.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "bad", verr.Fields["amount"])

	_, ok = validate.As(errors.New("plain"))
	assert.False(t, ok)
}

func TestError_Text(t *testing.T) {
	verr := &validate.Error{}

	verr.Text("name", "   ", 50)
	verr.Text("code", "ok", 5)
	verr.Text("description", "pão de queijo", 5)

	require.Error(t, verr.Err())
	assert.Equal(t, "Este campo é obrigatório.", verr.Fields["name"])
	assert.NotContains(t, verr.Fields, "code")
	assert.Equal(t, "Certifique-se de que este campo não tenha mais de 5 caracteres.", verr.Fields["description"])
}

func TestVar(t *testing.T) {
	assert.NoError(t, validate.Var("email", "ana@example.com", "required,email"))

	verr := &validate.Error{}
	verr.Merge(validate.Var("email", "ana.example.com", "required,email"))
	verr.Merge(validate.Var("password", "curta", "min=8"))
	verr.Merge(errors.New("not a validation error"))

	assert.Equal(t, map[string]string{
		"email":    "Insira um endereço de email válido.",
		"password": "Certifique-se de que este campo tenha no mínimo 8 caracteres.",
	}, verr.Fields)
}
