package entity

import "time"

// MovementType tipo de movimiento de stock (enum cerrado). Los valores son los del backend.
type MovementType string

// Tipos de movimiento.
const (
	MovementTypeIn  MovementType = "entrada" // stock-in
	MovementTypeOut MovementType = "saida"   // stock-out
)

// Valid indica si t pertenece al enum.
func (t MovementType) Valid() bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// Movement representa un movimiento de stock registrado por un usuario.
// Es write-once desde el cliente: no se edita ni se elimina.
type Movement struct {
	ProductID  string
	UserID     string
	Type       MovementType
	Quantity   int        // > 0
	OccurredAt *time.Time // nil = el backend asigna la fecha actual
	Note       *string    // nil si vacío
}

// MovementReceipt eco del backend tras registrar un movimiento.
type MovementReceipt struct {
	Product      *Product
	BelowMinimum bool // abaixo_do_minimo, calculado en el backend
}
