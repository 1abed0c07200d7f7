package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-coffee/internal/application/dto"
	"github.com/jhoicas/nexus-coffee/internal/application/usecase"
)

// SaleHandler registro y consulta de ventas.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// List godoc
// @Summary      Listar ventas
// @Description  Sin filtros devuelve todas las ventas (más recientes primero). Con q busca por cliente o id; con desde/hasta filtra por día, ambos inclusive.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  false  "Cliente o id"
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200    {object}  dto.ListResponse[dto.SaleResponse]
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if c.Query("desde") != "" || c.Query("hasta") != "" {
		desde, hasta, ok := dateRange(c, 30)
		if !ok {
			return badRequest(c, "INVALID_DATE", "las fechas deben tener formato YYYY-MM-DD")
		}
		out, err := h.uc.FilterByDates(ctx, desde, hasta)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.NewSaleList(out))
	}

	out, err := h.uc.Search(ctx, strings.TrimSpace(c.Query("q")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewSaleList(out))
}

// Create godoc
// @Summary      Registrar venta
// @Description  Inserta cabecera y líneas y descuenta stock en una sola transacción.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Venta"
// @Success      201   {object}  dto.SaleDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse  "producto inexistente"
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	items := make([]usecase.SaleItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, usecase.SaleItemInput{
			ProductID: it.ProductoID,
			Qty:       it.Cantidad,
			UnitPrice: it.PrecioUnitario,
		})
	}
	var usuarioID *int64
	if id := GetUserID(c); id > 0 {
		usuarioID = &id
	}

	detail, err := h.uc.RecordSale(c.UserContext(), usecase.RecordSaleInput{
		Cliente:      in.Cliente,
		ClienteRefID: in.ClienteRefID,
		UsuarioID:    usuarioID,
		Items:        items,
	})
	if err != nil {
		return respondError(c, err)
	}
	if detail.Sale.Vendedor == "" {
		detail.Sale.Vendedor = GetUsername(c)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSaleDetailResponse(detail))
}

// GetByID godoc
// @Summary      Detalle de venta
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.SaleDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badRequest(c, "INVALID_ID", "id debe ser un entero positivo")
	}
	detail, err := h.uc.GetDetail(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	if detail == nil {
		return notFound(c, "venta no encontrada")
	}
	return c.JSON(dto.NewSaleDetailResponse(detail))
}
