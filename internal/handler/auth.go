package handler

import (
	"net/http"

	"github.com/Michael2410/AlmacenAppv1/internal/apierror"
	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/service"
	"github.com/Michael2410/AlmacenAppv1/internal/worker"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc service.AuthService
	aud *worker.Auditor
}

func NewAuthHandler(svc service.AuthService, aud *worker.Auditor) *AuthHandler {
	return &AuthHandler{svc: svc, aud: aud}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Valida credenciales y devuelve un token bearer junto con el usuario y el catálogo de roles.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credenciales"
// @Success      200 {object} apierror.Envelope{data=dto.LoginResponse}
// @Failure      401 {object} apierror.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}

	// La ruta de login no pasa por JWTAuth, así que la entrada de auditoría
	// se arma con la identidad recién resuelta.
	if h.aud != nil {
		ip := c.ClientIP()
		ua := c.Request.UserAgent()
		h.aud.Registrar(model.AuditLog{
			UsuarioID:     resp.User.ID,
			UsuarioNombre: resp.User.Email,
			Accion:        "login",
			Modulo:        "auth",
			IP:            &ip,
			UserAgent:     &ua,
		})
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}
