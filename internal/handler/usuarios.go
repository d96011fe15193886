package handler

import (
	"net/http"

	"github.com/Michael2410/AlmacenAppv1/internal/apierror"
	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/service"
	"github.com/Michael2410/AlmacenAppv1/internal/worker"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct {
	svc service.UsuarioService
	aud *worker.Auditor
}

func NewUsuariosHandler(svc service.UsuarioService, aud *worker.Auditor) *UsuariosHandler {
	return &UsuariosHandler{svc: svc, aud: aud}
}

// Listar godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} apierror.Envelope{data=[]dto.UsuarioResponse}
// @Router       /users [get]
func (h *UsuariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar usuarios"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// Crear godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearUsuarioRequest true "Nuevo usuario"
// @Success      201 {object} apierror.Envelope{data=dto.UsuarioResponse}
// @Failure      400 {object} apierror.Envelope
// @Router       /users [post]
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "crear", "usuarios", resp.ID, resp.Email)
	c.JSON(http.StatusCreated, apierror.OK(resp))
}

func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "actualizar", "usuarios", resp.ID, resp.Email)
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// ActualizarPermisos replaces the user's extra permission tokens.
func (h *UsuariosHandler) ActualizarPermisos(c *gin.Context) {
	var req dto.ActualizarPermisosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarPermisos(c.Request.Context(), c.Param("id"), req.Permissions)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "permisos", "usuarios", resp.ID, resp.Email)
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "eliminar", "usuarios", id, "")
	c.JSON(http.StatusOK, apierror.OK(gin.H{"id": id}))
}
