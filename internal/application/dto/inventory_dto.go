package dto

import "github.com/jhoicas/estoque-meias/internal/domain/entity"

// MovementInput body para POST /api/movimentacoes (campos crudos del formulario).
// Tipo: "entrada" | "saida". DataMovimentacao: "YYYY-MM-DD", RFC 3339 o vacío.
type MovementInput struct {
	ProdutoID        FormValue `json:"produto_id"`
	Tipo             string    `json:"tipo"`
	Quantidade       FormValue `json:"quantidade"`
	DataMovimentacao string    `json:"data_movimentacao"`
	Observacao       string    `json:"observacao"`
}

// MovementOutcome resultado de un movimiento aceptado por el backend.
// Message y LowStockMessage son dos señales independientes; el stock bajo no es un error.
type MovementOutcome struct {
	Product         *entity.Product
	Message         string
	LowStock        bool
	LowStockMessage string
	RefreshErr      error
}

// MovementResponse salida HTTP de POST /api/movimentacoes.
type MovementResponse struct {
	Mensagem string              `json:"mensagem"`
	Alerta   string              `json:"alerta,omitempty"` // stock bajo
	Produto  *ProductView        `json:"produto,omitempty"`
	Catalogo ProductListResponse `json:"catalogo"`
	Aviso    string              `json:"aviso,omitempty"`
}

// StockReport datos para el PDF de stock.
type StockReport struct {
	GeneratedBy string
	Term        string
	Items       []ProductView
	LowStock    []ProductView
}
