package handler

import (
	"net/http"

	"github.com/Michael2410/AlmacenAppv1/internal/apierror"
	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/service"
	"github.com/Michael2410/AlmacenAppv1/internal/worker"

	"github.com/gin-gonic/gin"
)

type RolesHandler struct {
	svc service.RolService
	aud *worker.Auditor
}

func NewRolesHandler(svc service.RolService, aud *worker.Auditor) *RolesHandler {
	return &RolesHandler{svc: svc, aud: aud}
}

func (h *RolesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar roles"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *RolesHandler) Crear(c *gin.Context) {
	var req dto.CrearRolRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "crear", "roles", resp.ID, resp.Name)
	c.JSON(http.StatusCreated, apierror.OK(resp))
}

func (h *RolesHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarRolRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "actualizar", "roles", resp.ID, resp.Name)
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *RolesHandler) Eliminar(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "eliminar", "roles", id, "")
	c.JSON(http.StatusOK, apierror.OK(gin.H{"id": id}))
}
