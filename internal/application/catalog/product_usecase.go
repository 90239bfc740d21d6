package catalog

import (
	"context"
	"strings"

	"github.com/jhoicas/estoque-meias/internal/application/dto"
	"github.com/jhoicas/estoque-meias/internal/application/ports"
	"github.com/jhoicas/estoque-meias/internal/domain"
	"github.com/jhoicas/estoque-meias/internal/domain/entity"
)

// Operaciones reportadas en SubmissionError.Op.
const (
	OpCreateProduct = "create_product"
	OpUpdateProduct = "update_product"
	OpDeleteProduct = "delete_product"
)

// Mensajes mostrados al usuario.
const (
	MsgNameRequired      = "Informe o nome do produto."
	MsgNegativeQuantity  = "Quantidade não pode ser negativa."
	MsgNegativeMinimum   = "Estoque mínimo não pode ser negativo."
	MsgInvalidQuantity   = "Quantidade inválida."
	MsgInvalidMinimum    = "Estoque mínimo inválido."
	MsgProductIDRequired = "Selecione um produto."
	MsgCreateFailed      = "Erro ao criar produto"
	MsgUpdateFailed      = "Erro ao salvar produto"
	MsgDeleteFailed      = "Erro ao excluir produto"
)

// ProductUseCase casos de uso de mutación del catálogo. Tras cada mutación exitosa
// recarga el catálogo con el término activo (write-then-refetch); nunca parchea el snapshot.
type ProductUseCase struct {
	session ports.SessionGate
	backend ports.CatalogBackend
	store   *Store
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(session ports.SessionGate, backend ports.CatalogBackend, store *Store) *ProductUseCase {
	return &ProductUseCase{session: session, backend: backend, store: store}
}

// Create valida el formulario y crea el producto en el backend.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductForm) (*dto.ProductOutcome, error) {
	if _, err := uc.session.Require(); err != nil {
		return nil, err
	}
	draft, err := parseProductForm(in)
	if err != nil {
		return nil, err
	}
	product, err := uc.backend.CreateProduct(ctx, draft)
	if err != nil {
		return nil, &domain.SubmissionError{Op: OpCreateProduct, Message: domain.RemoteMessage(err, MsgCreateFailed), Err: err}
	}
	return uc.afterWrite(ctx, product), nil
}

// Update valida el formulario y reemplaza nombre, cantidad y mínimo del producto id.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductForm) (*dto.ProductOutcome, error) {
	if _, err := uc.session.Require(); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewValidationError("id", MsgProductIDRequired)
	}
	draft, err := parseProductForm(in)
	if err != nil {
		return nil, err
	}
	product, err := uc.backend.UpdateProduct(ctx, id, draft)
	if err != nil {
		return nil, &domain.SubmissionError{Op: OpUpdateProduct, Message: domain.RemoteMessage(err, MsgUpdateFailed), Err: err}
	}
	return uc.afterWrite(ctx, product), nil
}

// Delete elimina el producto id.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.ProductOutcome, error) {
	if _, err := uc.session.Require(); err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewValidationError("id", MsgProductIDRequired)
	}
	if err := uc.backend.DeleteProduct(ctx, id); err != nil {
		return nil, &domain.SubmissionError{Op: OpDeleteProduct, Message: domain.RemoteMessage(err, MsgDeleteFailed), Err: err}
	}
	return uc.afterWrite(ctx, nil), nil
}

// afterWrite recarga el catálogo una vez; el fallo del refresh no revierte la mutación.
func (uc *ProductUseCase) afterWrite(ctx context.Context, product *entity.Product) *dto.ProductOutcome {
	_, err := uc.store.RefreshActive(ctx)
	return &dto.ProductOutcome{Product: product, RefreshErr: err}
}

func parseProductForm(in dto.ProductForm) (entity.ProductDraft, error) {
	name := strings.TrimSpace(in.Nome)
	if name == "" {
		return entity.ProductDraft{}, domain.NewValidationError("nome", MsgNameRequired)
	}
	qty, err := parseNonNegative(in.Quantidade, "quantidade", MsgInvalidQuantity, MsgNegativeQuantity)
	if err != nil {
		return entity.ProductDraft{}, err
	}
	minimum, err := parseNonNegative(in.EstoqueMinimo, "estoque_minimo", MsgInvalidMinimum, MsgNegativeMinimum)
	if err != nil {
		return entity.ProductDraft{}, err
	}
	return entity.ProductDraft{Name: name, Quantity: qty, MinimumStock: minimum}, nil
}

// parseNonNegative: vacío equivale a 0 (valor inicial del formulario).
func parseNonNegative(v dto.FormValue, field, invalidMsg, negativeMsg string) (int, error) {
	if v.Trimmed() == "" {
		return 0, nil
	}
	n, err := v.Int()
	if err != nil {
		return 0, domain.NewValidationError(field, invalidMsg)
	}
	if n < 0 {
		return 0, domain.NewValidationError(field, negativeMsg)
	}
	return n, nil
}
