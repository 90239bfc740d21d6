package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-meias/internal/application/catalog"
	"github.com/jhoicas/estoque-meias/internal/application/dto"
)

// ProductHandler maneja el catálogo de productos (protegido).
type ProductHandler struct {
	store *catalog.Store
	uc    *catalog.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(store *catalog.Store, uc *catalog.ProductUseCase) *ProductHandler {
	return &ProductHandler{store: store, uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Description  Recarga el catálogo desde el backend (filtrado por nombre si q no está vacío) y lo devuelve ordenado.
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Término de búsqueda"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/produtos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if _, err := h.store.Refresh(c.UserContext(), c.Query("q")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.store.Listing())
}

// Snapshot godoc
// @Summary      Catálogo en memoria
// @Description  Último catálogo cargado con éxito, sin llamar al backend.
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/produtos/snapshot [get]
func (h *ProductHandler) Snapshot(c *fiber.Ctx) error {
	return c.JSON(h.store.Listing())
}

// Create godoc
// @Summary      Crear producto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductForm  true  "nome, quantidade, estoque_minimo"
// @Success      201   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.mutationResponse(out))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ProductForm  true  "nome, quantidade, estoque_minimo"
// @Success      200   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.mutationResponse(out))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductMutationResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.mutationResponse(out))
}

func (h *ProductHandler) mutationResponse(out *dto.ProductOutcome) dto.ProductMutationResponse {
	resp := dto.ProductMutationResponse{Catalogo: h.store.Listing(), Aviso: refreshWarning(out.RefreshErr)}
	if out.Product != nil {
		v := catalog.ToProductView(*out.Product)
		resp.Produto = &v
	}
	return resp
}
