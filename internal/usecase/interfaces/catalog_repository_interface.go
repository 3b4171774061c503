package interfaces

import (
	"context"
	"drywall_estimator/internal/domain/entities"
)

// ICatalogRepository reads the product/category catalog.
//
// The estimator never writes the catalog. Snapshot must return products and
// categories in a stable order because the resolver breaks ties by position.

type ICatalogRepository interface {
	Snapshot(ctx context.Context) (entities.CatalogSnapshot, error)
}
