package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/midas/internal/money"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Zero", in: "0", want: "R$ 0,00"},
		{name: "Cents", in: "150.75", want: "R$ 150,75"},
		{name: "RoundsHalfUp", in: "10.005", want: "R$ 10,01"},
		{name: "WholeNumber", in: "99", want: "R$ 99,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "Brazilian", in: "1.234,56", want: "1234.56"},
		{name: "Dot", in: "1234.56", want: "1234.56"},
		{name: "CommaOnly", in: "-588,74", want: "-588.74"},
		{name: "WithSymbol", in: "R$ 10,00", want: "10"},
		{name: "Garbage", in: "abc", wantErr: true},
		{name: "Empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}
