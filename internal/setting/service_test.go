package setting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/midas/internal/setting"
	"github.com/MrJamesThe3rd/midas/internal/validate"
)

func TestService_Decimal(t *testing.T) {
	fallback := decimal.NewFromInt(2500)

	tests := []struct {
		name      string
		setupMock func(m *setting.MockRepository)
		want      decimal.Decimal
	}{
		{
			name: "Stored",
			setupMock: func(m *setting.MockRepository) {
				m.EXPECT().GetByCode(gomock.Any(), "salary.fallback_amount").
					Return(&setting.Setting{Code: "salary.fallback_amount", Value: "3200.50"}, nil)
			},
			want: decimal.RequireFromString("3200.50"),
		},
		{
			name: "Missing",
			setupMock: func(m *setting.MockRepository) {
				m.EXPECT().GetByCode(gomock.Any(), gomock.Any()).Return(nil, setting.ErrNotFound)
			},
			want: fallback,
		},
		{
			name: "NotANumber",
			setupMock: func(m *setting.MockRepository) {
				m.EXPECT().GetByCode(gomock.Any(), gomock.Any()).
					Return(&setting.Setting{Code: "salary.fallback_amount", Value: "muito"}, nil)
			},
			want: fallback,
		},
		{
			name: "RepoError",
			setupMock: func(m *setting.MockRepository) {
				m.EXPECT().GetByCode(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			want: fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := setting.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got := setting.NewService(repo).Decimal(context.Background(), "salary.fallback_amount", fallback)
			assert.True(t, got.Equal(tt.want), got.String())
		})
	}
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := setting.NewMockRepository(ctrl)
	svc := setting.NewService(repo)

	_, err := svc.Create(context.Background(), setting.Params{Code: "salary.fallback_amount"})
	verr, ok := validate.As(err)
	require.True(t, ok)
	assert.Equal(t, "Este campo é obrigatório.", verr.Fields["value"])

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Create(context.Background(), setting.Params{Code: "salary.fallback_amount", Value: "2800"})
	require.NoError(t, err)
	assert.True(t, got.Active)
}
