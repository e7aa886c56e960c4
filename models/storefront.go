// ════════════════════════════════════════════════════════════
// STOREFRONT PRODUCT MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProductID is the catalog identifier of a product, kept as the raw JSON
// token the catalog API sent: a number stays a number and a string stays a
// string when the product is written back out.
type ProductID []byte

func (id ProductID) MarshalJSON() ([]byte, error) {
	if len(id) == 0 {
		return []byte("null"), nil
	}
	return id, nil
}

func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = nil
		return nil
	}

	switch {
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("product id: %w", err)
		}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("product id: %w", err)
		}
	}

	*id = append(ProductID(nil), data...)
	return nil
}

// String returns the id as text, without JSON quotes.
func (id ProductID) String() string {
	if len(id) > 0 && id[0] == '"' {
		var s string
		if err := json.Unmarshal(id, &s); err == nil {
			return s
		}
	}
	return string(id)
}

// Product is the display model rendered by a product card.
type Product struct {
	ID       ProductID `json:"id"`
	Title    string    `json:"title"`
	Brand    string    `json:"brand"`
	Price    float64   `json:"price"`
	ImageURL string    `json:"imageUrl"`
	Rating   float64   `json:"rating"`
}

// CatalogProduct is a single product as returned by the catalog API.
type CatalogProduct struct {
	ID       ProductID `json:"id"`
	Title    string    `json:"title"`
	Brand    string    `json:"brand"`
	Price    float64   `json:"price"`
	ImageURL string    `json:"image_url"`
	Rating   float64   `json:"rating"`
}

// CatalogProductsResponse is the success body of GET /products.
// Products is a pointer so that a missing field can be told apart from an empty list.
type CatalogProductsResponse struct {
	Products *[]CatalogProduct `json:"products"`
}

// ToProduct renames the payload fields into the display model.
func (p CatalogProduct) ToProduct() Product {
	return Product{
		ID:       p.ID,
		Title:    p.Title,
		Brand:    p.Brand,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Rating:   p.Rating,
	}
}
