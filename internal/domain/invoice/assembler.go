// Package invoice turns resolved materials into priced invoice lines and the
// draft invoice handed to the invoice editor.
package invoice

import (
	"drywall_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Assembled is the priced line list with its subtotal.
type Assembled struct {
	Items    []entities.InvoiceLineItem `json:"items"`
	Subtotal decimal.Decimal            `json:"subtotal"`
}

type lineKey struct {
	productID string
	unit      string
}

// Assemble prices resolved materials against the catalog. Lines sharing a
// (product, unit) pair are merged, which happens when several materials fall
// back to the same substitute product. Placeholder products are priced at zero.
func Assemble(resolved []entities.ResolvedMaterial, products []entities.CatalogProduct) Assembled {
	byID := make(map[string]entities.CatalogProduct, len(products))
	for _, p := range products {
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = p
		}
	}

	index := make(map[lineKey]int)
	items := make([]entities.InvoiceLineItem, 0, len(resolved))

	for _, r := range resolved {
		unitPrice := decimal.Zero
		imageURL := ""
		if p, ok := byID[r.ProductID]; ok && !r.IsNew {
			unitPrice = p.Price
			imageURL = p.ImageURL
		}

		key := lineKey{productID: r.ProductID, unit: r.Unit}
		if i, ok := index[key]; ok {
			items[i].Quantity += r.Quantity
			items[i].TotalPrice = lineTotal(items[i].Quantity, items[i].UnitPrice)
			continue
		}

		index[key] = len(items)
		items = append(items, entities.InvoiceLineItem{
			ProductID:   r.ProductID,
			ProductName: r.Name,
			Quantity:    r.Quantity,
			Unit:        r.Unit,
			UnitPrice:   unitPrice,
			TotalPrice:  lineTotal(r.Quantity, unitPrice),
			ImageURL:    imageURL,
		})
	}

	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.TotalPrice)
	}

	return Assembled{Items: items, Subtotal: subtotal}
}

func lineTotal(quantity float64, unitPrice decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(quantity).Mul(unitPrice)
}
