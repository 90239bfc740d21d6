package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-meias/internal/application/dto"
)

func TestGenerateStockReport(t *testing.T) {
	g := NewStockReportGenerator()
	items := []dto.ProductView{
		{ID: "2", Nome: "meia amarela", Quantidade: 1, EstoqueMinimo: 4, Baixo: true},
		{ID: "1", Nome: "Meia Azul", Quantidade: 12000, EstoqueMinimo: 2},
	}

	out, err := g.GenerateStockReport(context.Background(), dto.StockReport{
		GeneratedBy: "Ana",
		Term:        "meia",
		Items:       items,
		LowStock:    items[:1],
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateStockReport_CatalogoVacio(t *testing.T) {
	out, err := NewStockReportGenerator().GenerateStockReport(context.Background(), dto.StockReport{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands(0))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "25.000", formatThousands(25000))
	assert.Equal(t, "1.000.000", formatThousands(1000000))
	assert.Equal(t, "-1.000", formatThousands(-1000))
}
