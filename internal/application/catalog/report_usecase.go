package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/estoque-meias/internal/application/dto"
	"github.com/jhoicas/estoque-meias/internal/application/ports"
	domaincatalog "github.com/jhoicas/estoque-meias/internal/domain/catalog"
	"github.com/jhoicas/estoque-meias/internal/domain/entity"
	"github.com/jhoicas/estoque-meias/internal/domain/inventory"
)

// ReportUseCase genera el PDF de stock a partir del snapshot actual (sin llamada de red).
type ReportUseCase struct {
	session   ports.SessionGate
	store     *Store
	generator ports.StockReportGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(session ports.SessionGate, store *Store, generator ports.StockReportGenerator) *ReportUseCase {
	return &ReportUseCase{session: session, store: store, generator: generator, now: time.Now}
}

// Download devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) Download(ctx context.Context) ([]byte, string, error) {
	sess, err := uc.session.Require()
	if err != nil {
		return nil, "", err
	}
	ordered := domaincatalog.Order(uc.store.Snapshot())
	report := dto.StockReport{
		GeneratedBy: sess.DisplayName,
		Term:        uc.store.ActiveTerm(),
		Items:       toViews(ordered),
		LowStock:    toViews(inventory.LowStock(ordered)),
	}
	pdf, err := uc.generator.GenerateStockReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("relatório de estoque: %w", err)
	}
	return pdf, fmt.Sprintf("estoque-%s.pdf", uc.now().Format("20060102")), nil
}

func toViews(products []entity.Product) []dto.ProductView {
	views := make([]dto.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ToProductView(p))
	}
	return views
}
