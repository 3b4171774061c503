package entities

import "github.com/shopspring/decimal"

// CatalogProduct is a read-only product from the store catalog.
//
// Storage model (DynamoDB):
//   - PK: id
//   - position orders products; catalog order is the tie-break for matching.
type CatalogProduct struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	SubUnit    string          `json:"sub_unit,omitempty"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"category_id"`
	ImageURL   string          `json:"image_url,omitempty"`
	Position   int             `json:"position"`
}

type CatalogCategory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// CatalogSnapshot is a consistent, ordered view of the catalog for one
// resolve/assemble pass.
type CatalogSnapshot struct {
	Products   []CatalogProduct
	Categories []CatalogCategory
}
