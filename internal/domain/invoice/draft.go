package invoice

import (
	"strings"

	"drywall_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const descriptionPrefix = "برآورد مصالح"

// NewDraft builds the draft invoice payload. Customer, discount, additions
// and tax are left for the invoice editor.
func NewDraft(invoiceNumber, description string, assembled Assembled) entities.DraftInvoice {
	items := assembled.Items
	if items == nil {
		items = []entities.InvoiceLineItem{}
	}
	return entities.DraftInvoice{
		InvoiceNumber: invoiceNumber,
		CustomerID:    "",
		Items:         items,
		Subtotal:      assembled.Subtotal,
		Discount:      decimal.Zero,
		Additions:     decimal.Zero,
		Tax:           decimal.Zero,
		Total:         assembled.Subtotal,
		Description:   description,
	}
}

// Describe joins estimation descriptions into a single invoice description.
func Describe(estimations []entities.Estimation) string {
	parts := make([]string, 0, len(estimations))
	for _, e := range estimations {
		if d := strings.TrimSpace(e.Description); d != "" {
			parts = append(parts, d)
		}
	}
	if len(parts) == 0 {
		return descriptionPrefix
	}
	return descriptionPrefix + ": " + strings.Join(parts, "، ")
}
