package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-meias/internal/application/auth"
	"github.com/jhoicas/estoque-meias/internal/application/dto"
	"github.com/jhoicas/estoque-meias/internal/domain/entity"
	"github.com/jhoicas/estoque-meias/pkg/jwt"
)

// Vistas de la capa de presentación.
const (
	ViewLogin = "login"
	ViewHome  = "home"
)

// TokenConfig parámetros del token de sesión de UI.
type TokenConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthHandler maneja login, logout y estado de la sesión.
type AuthHandler struct {
	session *auth.SessionContext
	token   TokenConfig
	log     zerolog.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(session *auth.SessionContext, token TokenConfig, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{session: session, token: token, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	sess, err := h.session.Login(c.UserContext(), in.Email, in.Senha)
	if err != nil {
		return writeError(c, err)
	}
	token, err := jwt.Generate(h.token.Secret, sess.UserID, sess.DisplayName, h.token.Issuer, h.token.ExpMinutes)
	if err != nil {
		h.log.Error().Err(err).Msg("generar token de sesión")
		return writeError(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token, User: userResponse(sess), View: ViewHome})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.session.Logout()
	return c.JSON(dto.SessionResponse{View: ViewLogin})
}

// Session godoc
// @Summary      Estado de la sesión
// @Description  view "login" sin sesión; "home" con el usuario autenticado.
// @Tags         auth
// @Produce      json
// @Success      200   {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sess, ok := h.session.Current()
	if !ok {
		return c.JSON(dto.SessionResponse{View: ViewLogin})
	}
	user := userResponse(sess)
	return c.JSON(dto.SessionResponse{View: ViewHome, User: &user})
}

func userResponse(sess *entity.Session) dto.UserResponse {
	return dto.UserResponse{ID: sess.UserID, Nome: sess.DisplayName, Email: sess.Email}
}
