package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductID_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantText string
		wantErr  bool
	}{
		{name: "number", raw: `16`, wantText: "16"},
		{name: "string", raw: `"a7f1"`, wantText: "a7f1"},
		{name: "null", raw: `null`, wantText: ""},
		{name: "object", raw: `{}`, wantErr: true},
		{name: "bool", raw: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ProductID
			err := json.Unmarshal([]byte(tt.raw), &id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantText, id.String())

			out, err := json.Marshal(id)
			require.NoError(t, err)
			require.JSONEq(t, tt.raw, string(out))
		})
	}
}

func TestCatalogProductsResponse_MissingProducts(t *testing.T) {
	var resp CatalogProductsResponse

	require.NoError(t, json.Unmarshal([]byte(`{}`), &resp))
	require.Nil(t, resp.Products)

	require.NoError(t, json.Unmarshal([]byte(`{"products":[]}`), &resp))
	require.NotNil(t, resp.Products)
	require.Empty(t, *resp.Products)
}

func TestCatalogProduct_ToProduct(t *testing.T) {
	var p CatalogProduct
	raw := `{"id":3,"title":"Earbuds","brand":"boAt","price":1499,"image_url":"https://x/e.png","rating":4.2,"availability":"In Stock"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	require.Equal(t, Product{
		ID:       ProductID(`3`),
		Title:    "Earbuds",
		Brand:    "boAt",
		Price:    1499,
		ImageURL: "https://x/e.png",
		Rating:   4.2,
	}, p.ToProduct())

	out, err := json.Marshal(p.ToProduct())
	require.NoError(t, err)
	require.JSONEq(t, `{"id":3,"title":"Earbuds","brand":"boAt","price":1499,"imageUrl":"https://x/e.png","rating":4.2}`, string(out))
}

func TestOptionTables(t *testing.T) {
	require.Len(t, CategoryOptions, 5)
	require.Len(t, SortOptions, 2)
	require.Len(t, RatingOptions, 4)
	require.Equal(t, SortPriceHigh, DefaultSortOptionID())

	require.True(t, IsKnownCategory(""))
	require.True(t, IsKnownCategory("5"))
	require.False(t, IsKnownCategory("6"))
	require.True(t, IsKnownRating("1"))
	require.False(t, IsKnownRating("5"))

	opt, ok := FindSortOption(SortPriceLow)
	require.True(t, ok)
	require.Equal(t, "Price (Low-High)", opt.DisplayText)
	_, ok = FindSortOption("PRICE_RANDOM")
	require.False(t, ok)
}
