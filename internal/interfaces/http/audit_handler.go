package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-coffee/internal/application/dto"
	"github.com/jhoicas/nexus-coffee/internal/application/usecase"
)

// AuditHandler consulta de la bitácora (solo admin).
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List GET /api/audit?limit=100
func (h *AuditHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewAuditList(out))
}
