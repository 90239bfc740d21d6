package entity

// Product representa un producto del catálogo tal como lo devuelve el backend.
// Quantity es siempre el valor autoritativo del backend tras el último refresh; nunca se calcula en el cliente.
type Product struct {
	ID           string
	Name         string
	Quantity     int // stock actual (>= 0)
	MinimumStock int // umbral: por debajo se considera stock bajo
}

// ProductDraft datos enviados al backend para crear o editar un producto.
type ProductDraft struct {
	Name         string
	Quantity     int
	MinimumStock int
}
