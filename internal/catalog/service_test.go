package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/midas/internal/catalog"
	"github.com/MrJamesThe3rd/midas/internal/validate"
)

func TestService_CreateCategory(t *testing.T) {
	tests := []struct {
		name      string
		params    catalog.CategoryParams
		setupMock func(m *catalog.MockRepository)
		wantCode  catalog.Code
		wantField string
		wantErr   bool
	}{
		{
			name:   "DefaultCode",
			params: catalog.CategoryParams{Name: "Aluguel"},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().CreateCategories(gomock.Any(), gomock.Len(1)).Return(nil)
			},
			wantCode: catalog.CodeFixedExpense,
		},
		{
			name:   "Leisure",
			params: catalog.CategoryParams{Code: catalog.CodeLeisure, Name: "Cinema"},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().CreateCategories(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: catalog.CodeLeisure,
		},
		{
			name:      "InvalidCode",
			params:    catalog.CategoryParams{Code: "XYZ", Name: "Outro"},
			wantErr:   true,
			wantField: "code",
		},
		{
			name:      "NameTooLong",
			params:    catalog.CategoryParams{Name: "Uma categoria com um nome comprido demais para caber"},
			wantErr:   true,
			wantField: "name",
		},
		{
			name:   "RepoError",
			params: catalog.CategoryParams{Name: "Mercado"},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().CreateCategories(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := catalog.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := catalog.NewService(repo).CreateCategory(context.Background(), tt.params)
			if tt.wantErr {
				require.Error(t, err)

				if tt.wantField != "" {
					verr, ok := validate.As(err)
					require.True(t, ok)
					assert.Contains(t, verr.Fields, tt.wantField)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.True(t, got.Active)
		})
	}
}

func TestService_ImportDestinations(t *testing.T) {
	t.Run("RejectsWholeBatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		repo := catalog.NewMockRepository(ctrl)

		_, err := catalog.NewService(repo).ImportDestinations(context.Background(), []catalog.DestinationParams{
			{Name: "Nubank"},
			{Name: ""},
		})

		verr, ok := validate.As(err)
		require.True(t, ok)
		assert.Equal(t, map[string]string{"2.name": "Este campo é obrigatório."}, verr.Fields)
	})

	t.Run("CreatesAll", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		repo := catalog.NewMockRepository(ctrl)
		repo.EXPECT().CreateDestinations(gomock.Any(), gomock.Len(2)).
			DoAndReturn(func(_ context.Context, dests []*catalog.Destination) error {
				for _, d := range dests {
					d.ID = uuid.New()
				}

				return nil
			})

		got, err := catalog.NewService(repo).ImportDestinations(context.Background(), []catalog.DestinationParams{
			{Name: "Nubank", Description: "Cartão"},
			{Name: "Itaú"},
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.NotEqual(t, uuid.Nil, got[0].ID)
	})
}

func TestService_UpdateCategory_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	id := uuid.New()
	repo := catalog.NewMockRepository(ctrl)
	repo.EXPECT().GetCategory(gomock.Any(), id).Return(nil, catalog.ErrNotFound)

	_, err := catalog.NewService(repo).UpdateCategory(context.Background(), id, catalog.CategoryParams{Name: "x"})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
