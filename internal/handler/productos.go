package handler

import (
	"net/http"

	"github.com/Michael2410/AlmacenAppv1/internal/apierror"
	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/service"
	"github.com/Michael2410/AlmacenAppv1/internal/worker"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct {
	svc service.ProductoService
	aud *worker.Auditor
}

func NewProductosHandler(svc service.ProductoService, aud *worker.Auditor) *ProductosHandler {
	return &ProductosHandler{svc: svc, aud: aud}
}

func (h *ProductosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *ProductosHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "crear", "productos", resp.ID, resp.Nombre)
	c.JSON(http.StatusCreated, apierror.OK(resp))
}

func (h *ProductosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "actualizar", "productos", resp.ID, resp.Nombre)
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "eliminar", "productos", id, "")
	c.JSON(http.StatusOK, apierror.OK(gin.H{"id": id}))
}
