package ports

import (
	"context"

	"github.com/jhoicas/estoque-meias/internal/domain/entity"
)

// Authenticator puerto de salida hacia el servicio de autenticación (POST /auth/login).
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*entity.Session, error)
}

// CatalogBackend puerto de salida para el catálogo de productos del backend.
// term vacío (tras trim) lista todo el catálogo; si no, el backend filtra por nombre.
type CatalogBackend interface {
	ListProducts(ctx context.Context, term string) ([]entity.Product, error)
	CreateProduct(ctx context.Context, draft entity.ProductDraft) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, draft entity.ProductDraft) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// MovementBackend puerto de salida para registrar movimientos de stock.
// La aritmética de cantidades y la comparación con el mínimo ocurren en el backend.
type MovementBackend interface {
	CreateMovement(ctx context.Context, mov entity.Movement) (*entity.MovementReceipt, error)
}

// Backend agrupa todos los puertos que implementa el cliente REST.
// Los errores de rechazo deben envolver *domain.RemoteError para conservar el texto del backend.
type Backend interface {
	Authenticator
	CatalogBackend
	MovementBackend
}

// SessionGate da acceso a la sesión activa en el momento en que se ejecuta una operación.
type SessionGate interface {
	Require() (*entity.Session, error)
}
