package catalog

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-meias/internal/application/dto"
	"github.com/jhoicas/estoque-meias/internal/application/ports"
	"github.com/jhoicas/estoque-meias/internal/domain"
	domaincatalog "github.com/jhoicas/estoque-meias/internal/domain/catalog"
	"github.com/jhoicas/estoque-meias/internal/domain/entity"
	"github.com/jhoicas/estoque-meias/internal/domain/inventory"
)

// MsgFetchFailed mensaje mostrado cuando no se puede cargar el catálogo.
const MsgFetchFailed = "Erro ao carregar produtos"

// Store mantiene el snapshot del catálogo que ve la UI.
// El snapshot solo se reemplaza completo tras un fetch exitoso; nunca se edita en sitio.
type Store struct {
	backend   ports.CatalogBackend
	log       zerolog.Logger
	dropStale bool

	mu       sync.RWMutex
	products []entity.Product
	term     string // término de búsqueda activo
	issued   uint64 // última generación emitida
	applied  uint64 // generación del snapshot actual
}

// StoreOption configura el Store.
type StoreOption func(*Store)

// WithStaleRefreshGuard descarta respuestas de refresh más viejas que el snapshot aplicado.
// Sin esta opción gana la última respuesta en llegar, aunque sea de una búsqueda anterior.
func WithStaleRefreshGuard(enabled bool) StoreOption {
	return func(s *Store) { s.dropStale = enabled }
}

// NewStore construye el Store con snapshot vacío y término activo vacío.
func NewStore(backend ports.CatalogBackend, log zerolog.Logger, opts ...StoreOption) *Store {
	s := &Store{backend: backend, log: log, products: []entity.Product{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh registra term como término activo, pide el catálogo (filtrado por nombre si term
// no está vacío) y reemplaza el snapshot. Si falla, devuelve *domain.FetchError y conserva
// el snapshot anterior.
func (s *Store) Refresh(ctx context.Context, term string) ([]entity.Product, error) {
	s.mu.Lock()
	s.term = term
	s.issued++
	gen := s.issued
	s.mu.Unlock()

	products, err := s.backend.ListProducts(ctx, term)
	if err != nil {
		s.log.Warn().Err(err).Str("q", term).Msg("refresh del catálogo fallido; se conserva el snapshot")
		return nil, &domain.FetchError{Message: MsgFetchFailed, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dropStale && gen < s.applied {
		s.log.Debug().Uint64("gen", gen).Uint64("applied", s.applied).Msg("respuesta de refresh obsoleta descartada")
		return cloneProducts(s.products), nil
	}
	s.products = cloneProducts(products)
	s.applied = gen
	return cloneProducts(s.products), nil
}

// RefreshActive recarga el catálogo con el término de búsqueda activo.
// Toda mutación exitosa lo invoca exactamente una vez.
func (s *Store) RefreshActive(ctx context.Context) ([]entity.Product, error) {
	return s.Refresh(ctx, s.ActiveTerm())
}

// Snapshot devuelve una copia del último catálogo obtenido, sin llamada de red.
func (s *Store) Snapshot() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.products)
}

// ActiveTerm devuelve el término de búsqueda activo.
func (s *Store) ActiveTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.term
}

// Listing devuelve el snapshot ordenado alfabéticamente (pt-BR) con la marca de stock bajo.
func (s *Store) Listing() dto.ProductListResponse {
	items := toViews(domaincatalog.Order(s.Snapshot()))
	return dto.ProductListResponse{Items: items, Total: len(items), Q: s.ActiveTerm()}
}

// ToProductView convierte un producto en la fila que consume la presentación.
func ToProductView(p entity.Product) dto.ProductView {
	return dto.ProductView{
		ID:            p.ID,
		Nome:          p.Name,
		Quantidade:    p.Quantity,
		EstoqueMinimo: p.MinimumStock,
		Baixo:         inventory.IsLow(p),
	}
}

func cloneProducts(in []entity.Product) []entity.Product {
	out := make([]entity.Product, len(in))
	copy(out, in)
	return out
}
