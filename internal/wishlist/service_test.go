package wishlist_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/midas/internal/wishlist"
	"github.com/MrJamesThe3rd/midas/internal/validate"
)

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name       string
		item       wishlist.Item
		wantFields []string
	}{
		{
			name: "Valid",
			item: wishlist.Item{
				Name:  "Duna",
				Kind:  wishlist.KindBook,
				Price: decimal.RequireFromString("59.90"),
				Link:  "https://example.com/duna",
			},
		},
		{
			name:       "ZeroPrice",
			item:       wishlist.Item{Name: "Tênis", Kind: wishlist.KindShoes},
			wantFields: []string{"price"},
		},
		{
			name: "BadLinkAndKind",
			item: wishlist.Item{
				Name:  "Perfume",
				Kind:  "XXX",
				Price: decimal.NewFromInt(300),
				Link:  "loja/perfume",
			},
			wantFields: []string{"kind", "link"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			verr, ok := validate.As(err)
			require.True(t, ok)

			for _, f := range tt.wantFields {
				assert.Contains(t, verr.Fields, f)
			}
		})
	}
}

func TestService_Create_DefaultKind(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := wishlist.NewMockRepository(ctrl)
	repo.EXPECT().CreateItems(gomock.Any(), gomock.Len(1)).Return(nil)

	got, err := wishlist.NewService(repo).Create(context.Background(), wishlist.Params{
		Name:  "O Hobbit",
		Price: decimal.NewFromInt(45),
	})
	require.NoError(t, err)
	assert.Equal(t, wishlist.KindBook, got.Kind)
	assert.False(t, got.Purchased)
}

func TestService_Import_RowErrors(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := wishlist.NewMockRepository(ctrl)

	_, err := wishlist.NewService(repo).Import(context.Background(), []wishlist.Params{
		{Name: "Camisa", Kind: wishlist.KindClothing, Price: decimal.NewFromInt(80)},
		{Name: "Viagem", Kind: wishlist.KindGoal},
	})

	verr, ok := validate.As(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "2.price")
	assert.Len(t, verr.Fields, 1)
}

func TestService_TogglePurchased(t *testing.T) {
	ctrl := gomock.NewController(t)

	id := uuid.New()
	repo := wishlist.NewMockRepository(ctrl)
	repo.EXPECT().TogglePurchased(gomock.Any(), id).Return(&wishlist.Item{ID: id, Purchased: true}, nil)

	got, err := wishlist.NewService(repo).TogglePurchased(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, got.Purchased)

	repo.EXPECT().TogglePurchased(gomock.Any(), id).Return(nil, wishlist.ErrNotFound)

	_, err = wishlist.NewService(repo).TogglePurchased(context.Background(), id)
	assert.ErrorIs(t, err, wishlist.ErrNotFound)
}

func TestService_Pending(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := wishlist.NewMockRepository(ctrl)
	repo.EXPECT().ListItems(gomock.Any(), wishlist.ListFilter{Purchased: new(false)}).
		Return([]*wishlist.Item{
			{Price: decimal.RequireFromString("59.90")},
			{Price: decimal.RequireFromString("120.10")},
		}, 2, nil)

	got, err := wishlist.NewService(repo).Pending(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(180)), got.String())
}
