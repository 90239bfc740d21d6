package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-meias/internal/domain/entity"
	"github.com/jhoicas/estoque-meias/internal/domain/inventory"
)

func TestIsLow(t *testing.T) {
	cases := []struct {
		name     string
		qty, min int
		want     bool
	}{
		{"debajo del mínimo", 3, 5, true},
		{"igual al mínimo no es bajo", 5, 5, false},
		{"encima del mínimo", 6, 5, false},
		{"mínimo cero", 0, 0, false},
		{"stock cero con mínimo uno", 0, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := entity.Product{ID: "1", Name: "Meia", Quantity: tc.qty, MinimumStock: tc.min}
			assert.Equal(t, tc.want, inventory.IsLow(p))
			assert.Equal(t, p.Quantity < p.MinimumStock, inventory.IsLow(p))
		})
	}
}

func TestLowStock_ConservaOrden(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Name: "Meia X", Quantity: 3, MinimumStock: 5},
		{ID: "2", Name: "Meia Y", Quantity: 9, MinimumStock: 5},
		{ID: "3", Name: "Meia Z", Quantity: 1, MinimumStock: 2},
	}
	low := inventory.LowStock(products)
	if assert.Len(t, low, 2) {
		assert.Equal(t, "1", low[0].ID)
		assert.Equal(t, "3", low[1].ID)
	}
	assert.Empty(t, inventory.LowStock(nil))
}
