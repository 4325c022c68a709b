package packages

import (
	"context"

	"github.com/renolab/quotient/internal/domain/catalog"
)

// CatalogSource supplies the service catalog fresh per invocation.
type CatalogSource interface {
	List(ctx context.Context) ([]catalog.Item, error)
}
