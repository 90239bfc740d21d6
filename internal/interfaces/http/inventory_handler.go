package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-meias/internal/application/catalog"
	"github.com/jhoicas/estoque-meias/internal/application/dto"
	"github.com/jhoicas/estoque-meias/internal/application/inventory"
)

// InventoryHandler maneja el registro de movimientos de stock (protegido).
type InventoryHandler struct {
	uc    *inventory.RegisterMovementUseCase
	store *catalog.Store
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RegisterMovementUseCase, store *catalog.Store) *InventoryHandler {
	return &InventoryHandler{uc: uc, store: store}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  tipo "entrada" o "saida"; quantidade entero > 0. Si el producto queda abaixo do mínimo, "alerta" trae el aviso.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementInput  true  "produto_id, tipo, quantidade, data_movimentacao, observacao"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.MovementInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Submit(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	resp := dto.MovementResponse{
		Mensagem: out.Message,
		Alerta:   out.LowStockMessage,
		Catalogo: h.store.Listing(),
		Aviso:    refreshWarning(out.RefreshErr),
	}
	if out.Product != nil {
		v := catalog.ToProductView(*out.Product)
		resp.Produto = &v
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
