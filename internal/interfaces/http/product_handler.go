package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-coffee/internal/application/dto"
	"github.com/jhoicas/nexus-coffee/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar o buscar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Texto a buscar en nombre o categoría"
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), strings.TrimSpace(c.Query("q")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewProductList(out))
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	id, err := h.uc.Create(c.UserContext(), in.ToEntity(0))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
	}
	p, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if p == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(dto.NewProductResponse(p))
}

// Update godoc
// @Summary      Reemplazar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos completos"
// @Success      200   {object}  dto.AffectedResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	n, err := h.uc.Update(c.UserContext(), in.ToEntity(id))
	if err != nil {
		return respondError(c, err)
	}
	if n == 0 {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(dto.AffectedResponse{Affected: n})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.AffectedResponse
// @Failure      409  {object}  dto.ErrorResponse  "el producto tiene ventas"
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
	}
	n, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if n == 0 {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(dto.AffectedResponse{Affected: n})
}

// Stock GET /api/products/:id/stock
func (h *ProductHandler) Stock(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
	}
	stock, err := h.uc.StockAvailable(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if stock == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(dto.StockResponse{ProductoID: id, Stock: *stock})
}

// LowStock GET /api/products/low-stock
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.ListLowStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewProductList(out))
}

// Categories GET /api/products/categories
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(out))
}
