package interfaces

import (
	"context"
	"drywall_estimator/internal/domain/entities"
)

// IDraftInvoiceRepository stores draft invoices for the invoice editor to pick up.

type IDraftInvoiceRepository interface {
	Create(ctx context.Context, d entities.DraftInvoice) (entities.DraftInvoice, error)
	GetByID(ctx context.Context, id string) (entities.DraftInvoice, error)
}
