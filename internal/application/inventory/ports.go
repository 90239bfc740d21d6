package inventory

import (
	"context"

	"github.com/jhoicas/estoque-meias/internal/domain/entity"
)

// CatalogRefresher recarga el catálogo con el término de búsqueda activo.
// Lo implementa *catalog.Store.
type CatalogRefresher interface {
	RefreshActive(ctx context.Context) ([]entity.Product, error)
}
