package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-coffee/internal/application/dto"
	"github.com/jhoicas/nexus-coffee/internal/application/usecase"
)

// ConfigHandler claves de configuracion.
type ConfigHandler struct {
	uc *usecase.ConfigUseCase
}

func NewConfigHandler(uc *usecase.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// List GET /api/config
func (h *ConfigHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewConfigList(out))
}

// Set godoc
// @Summary      Guardar clave de configuración
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Param        key   path  string                true  "Clave"
// @Param        body  body  dto.SetConfigRequest  true  "Valor"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/config/{key} [put]
func (h *ConfigHandler) Set(c *fiber.Ctx) error {
	var in dto.SetConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.uc.Set(c.UserContext(), c.Params("key"), in.Valor); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
