package dto

import "github.com/jhoicas/estoque-meias/internal/domain/entity"

// ProductForm body para crear o editar un producto (campos crudos del formulario).
type ProductForm struct {
	Nome          string    `json:"nome"`
	Quantidade    FormValue `json:"quantidade"`
	EstoqueMinimo FormValue `json:"estoque_minimo"`
}

// ProductView fila del catálogo lista para la capa de presentación.
type ProductView struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	Quantidade    int    `json:"quantidade"`
	EstoqueMinimo int    `json:"estoque_minimo"`
	Baixo         bool   `json:"baixo"` // quantidade < estoque_minimo
}

// ProductListResponse catálogo ordenado alfabéticamente.
type ProductListResponse struct {
	Items []ProductView `json:"items"`
	Total int           `json:"total"`
	Q     string        `json:"q"`
}

// ProductOutcome resultado de una mutación de producto exitosa.
// RefreshErr no nil indica que la mutación se aplicó pero el catálogo no pudo recargarse.
type ProductOutcome struct {
	Product    *entity.Product
	RefreshErr error
}

// ProductMutationResponse salida HTTP de create/update/delete.
type ProductMutationResponse struct {
	Produto  *ProductView        `json:"produto,omitempty"`
	Catalogo ProductListResponse `json:"catalogo"`
	Aviso    string              `json:"aviso,omitempty"` // fallo del refresh posterior
}
