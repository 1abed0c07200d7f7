package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-coffee/internal/application/dto"
	"github.com/jhoicas/nexus-coffee/internal/application/usecase"
	"github.com/jhoicas/nexus-coffee/internal/domain/entity"
)

// CustomerHandler maneja las peticiones HTTP para clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.CustomerResponse]
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewCustomerList(out))
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	id, err := h.uc.Create(c.UserContext(), &entity.Customer{Nombre: in.Nombre, Email: in.Email, Telefono: in.Telefono})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	n, err := h.uc.Update(c.UserContext(), &entity.Customer{ID: id, Nombre: in.Nombre, Email: in.Email, Telefono: in.Telefono})
	if err != nil {
		return respondError(c, err)
	}
	if n == 0 {
		return notFound(c, "cliente no encontrado")
	}
	return c.JSON(dto.AffectedResponse{Affected: n})
}

// Delete DELETE /api/customers/:id. Las ventas del cliente conservan el nombre.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
	}
	n, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if n == 0 {
		return notFound(c, "cliente no encontrado")
	}
	return c.JSON(dto.AffectedResponse{Affected: n})
}

// Frequent godoc
// @Summary      Clientes frecuentes
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int     false  "Máximo de clientes"  default(10)
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200    {object}  dto.ListResponse[dto.FrequentCustomerResponse]
// @Router       /api/customers/frequent [get]
func (h *CustomerHandler) Frequent(c *fiber.Ctx) error {
	desde, ok := queryDate(c, "desde")
	if !ok {
		return badRequest(c, "INVALID_DATE", "desde debe tener formato YYYY-MM-DD")
	}
	hasta, ok := queryDate(c, "hasta")
	if !ok {
		return badRequest(c, "INVALID_DATE", "hasta debe tener formato YYYY-MM-DD")
	}
	out, err := h.uc.Frequent(c.UserContext(), c.QueryInt("limit", 10), desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewFrequentCustomerList(out))
}
