package handler

import (
	"net/http"

	"github.com/Michael2410/AlmacenAppv1/internal/apierror"
	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/service"
	"github.com/Michael2410/AlmacenAppv1/internal/worker"

	"github.com/gin-gonic/gin"
)

type ProveedoresHandler struct {
	svc service.ProveedorService
	aud *worker.Auditor
}

func NewProveedoresHandler(svc service.ProveedorService, aud *worker.Auditor) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc, aud: aud}
}

func (h *ProveedoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar proveedores"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "crear", "proveedores", resp.ID, resp.Nombre)
	c.JSON(http.StatusCreated, apierror.OK(resp))
}

func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "actualizar", "proveedores", resp.ID, resp.Nombre)
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *ProveedoresHandler) Eliminar(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "eliminar", "proveedores", id, "")
	c.JSON(http.StatusOK, apierror.OK(gin.H{"id": id}))
}
