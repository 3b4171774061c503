package response

import (
	"time"

	"drywall_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type InvoiceLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    float64         `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string" example:"850000"`
	TotalPrice  decimal.Decimal `json:"total_price" swaggertype:"string" example:"1700000"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsNew       bool            `json:"is_new"`
}

type DraftInvoiceResponse struct {
	ID            string                `json:"id"`
	SessionID     string                `json:"session_id"`
	InvoiceNumber string                `json:"invoice_number"`
	CustomerID    string                `json:"customer_id"`
	Items         []InvoiceLineResponse `json:"items"`
	Subtotal      decimal.Decimal       `json:"subtotal" swaggertype:"string"`
	Discount      decimal.Decimal       `json:"discount" swaggertype:"string"`
	Additions     decimal.Decimal       `json:"additions" swaggertype:"string"`
	Tax           decimal.Decimal       `json:"tax" swaggertype:"string"`
	Total         decimal.Decimal       `json:"total" swaggertype:"string"`
	Description   string                `json:"description"`
	CreatedAt     time.Time             `json:"created_at"`
}

func FromDraftInvoice(d entities.DraftInvoice) DraftInvoiceResponse {
	items := make([]InvoiceLineResponse, 0, len(d.Items))
	for _, li := range d.Items {
		items = append(items, InvoiceLineResponse{
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			Quantity:    li.Quantity,
			Unit:        li.Unit,
			UnitPrice:   li.UnitPrice,
			TotalPrice:  li.TotalPrice,
			ImageURL:    li.ImageURL,
			IsNew:       li.IsNewProduct(),
		})
	}
	return DraftInvoiceResponse{
		ID:            d.ID,
		SessionID:     d.SessionID,
		InvoiceNumber: d.InvoiceNumber,
		CustomerID:    d.CustomerID,
		Items:         items,
		Subtotal:      d.Subtotal,
		Discount:      d.Discount,
		Additions:     d.Additions,
		Tax:           d.Tax,
		Total:         d.Total,
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
	}
}
