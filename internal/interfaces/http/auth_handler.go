package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-coffee/internal/application/auth"
	"github.com/jhoicas/nexus-coffee/internal/application/dto"
	"github.com/jhoicas/nexus-coffee/pkg/jwt"
	"github.com/jhoicas/nexus-coffee/pkg/logger"
)

// TokenConfig parámetros para emitir el JWT de sesión.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// AuthHandler maneja el login.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	token TokenConfig
	log   *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, token TokenConfig, log *logger.Logger) *AuthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthHandler{uc: uc, token: token, log: log.Component("auth")}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return badRequest(c, "VALIDATION", "username y password son requeridos")
	}

	user, err := h.uc.Authenticate(c.UserContext(), in.Username, in.Password)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		h.log.Warn().Str("username", in.Username).Msg("login rechazado")
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}

	token, err := jwt.Generate(h.token.Secret, h.token.Issuer, user.ID, user.Username, user.Rol, h.token.ExpMinutes)
	if err != nil {
		return respondError(c, err)
	}
	h.log.Info().Int64("user_id", user.ID).Str("rol", user.Rol).Msg("login correcto")
	return c.JSON(dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)})
}
