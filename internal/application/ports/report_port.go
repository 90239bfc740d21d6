package ports

import (
	"context"

	"github.com/jhoicas/estoque-meias/internal/application/dto"
)

// StockReportGenerator genera la representación PDF del catálogo.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, report dto.StockReport) ([]byte, error)
}
