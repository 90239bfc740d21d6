package inventory

import "github.com/jhoicas/estoque-meias/internal/domain/entity"

// IsLow indica si el producto está por debajo de su stock mínimo (servicio de dominio).
// Desigualdad estricta: Quantity == MinimumStock no es stock bajo.
func IsLow(p entity.Product) bool {
	return p.Quantity < p.MinimumStock
}

// LowStock devuelve, en el mismo orden, los productos con stock bajo.
func LowStock(products []entity.Product) []entity.Product {
	low := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if IsLow(p) {
			low = append(low, p)
		}
	}
	return low
}
