package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NewProductIDPrefix marks placeholder ids for materials missing from the catalog.
const NewProductIDPrefix = "new_"

// ResolvedMaterial is the resolver's output for one aggregated material: either
// a reference to an existing catalog product or a placeholder (IsNew).
type ResolvedMaterial struct {
	IsNew     bool    `json:"is_new"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
}

// InvoiceLineItem is unique per (ProductID, Unit) within one invoice and
// TotalPrice always equals Quantity * UnitPrice.
type InvoiceLineItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    float64         `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	ImageURL    string          `json:"image_url,omitempty"`
}

// IsNewProduct reports whether the line points at a placeholder product.
func (li InvoiceLineItem) IsNewProduct() bool {
	return strings.HasPrefix(li.ProductID, NewProductIDPrefix)
}

// DraftInvoice is the payload handed to the invoice editor.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id
//
// Customer assignment and financial adjustments happen downstream; a draft
// always starts with an empty customer and zero discount, additions and tax.
type DraftInvoice struct {
	ID            string            `json:"id"`
	SessionID     string            `json:"session_id"`
	InvoiceNumber string            `json:"invoice_number"`
	CustomerID    string            `json:"customer_id"`
	Items         []InvoiceLineItem `json:"items"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	Discount      decimal.Decimal   `json:"discount"`
	Additions     decimal.Decimal   `json:"additions"`
	Tax           decimal.Decimal   `json:"tax"`
	Total         decimal.Decimal   `json:"total"`
	Description   string            `json:"description"`
	CreatedAt     time.Time         `json:"created_at"`
}
