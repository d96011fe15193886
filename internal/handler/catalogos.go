package handler

import (
	"net/http"

	"github.com/Michael2410/AlmacenAppv1/internal/apierror"
	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/service"
	"github.com/Michael2410/AlmacenAppv1/internal/worker"

	"github.com/gin-gonic/gin"
)

// CatalogosHandler expone los catálogos de referencia: áreas, ubicaciones y
// unidades de medida.
type CatalogosHandler struct {
	svc service.CatalogoService
	aud *worker.Auditor
}

func NewCatalogosHandler(svc service.CatalogoService, aud *worker.Auditor) *CatalogosHandler {
	return &CatalogosHandler{svc: svc, aud: aud}
}

// Referencias godoc
// @Summary      Áreas y ubicaciones en una sola llamada
// @Tags         catalogos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} apierror.Envelope{data=dto.ReferenciasResponse}
// @Router       /referencias [get]
func (h *CatalogosHandler) Referencias(c *gin.Context) {
	resp, err := h.svc.Referencias(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar referencias"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// ── Areas ─────────────────────────────────────────────────────────────────────

func (h *CatalogosHandler) ListarAreas(c *gin.Context) {
	resp, err := h.svc.ListarAreas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar áreas"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *CatalogosHandler) CrearArea(c *gin.Context) {
	var req dto.CrearNombreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearArea(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "crear", "areas", resp.ID, resp.Nombre)
	c.JSON(http.StatusCreated, apierror.OK(resp))
}

func (h *CatalogosHandler) ActualizarArea(c *gin.Context) {
	var req dto.CrearNombreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarArea(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "actualizar", "areas", resp.ID, resp.Nombre)
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *CatalogosHandler) EliminarArea(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.EliminarArea(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "eliminar", "areas", id, "")
	c.JSON(http.StatusOK, apierror.OK(gin.H{"id": id}))
}

// ── Ubicaciones ───────────────────────────────────────────────────────────────

func (h *CatalogosHandler) ListarUbicaciones(c *gin.Context) {
	resp, err := h.svc.ListarUbicaciones(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ubicaciones"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *CatalogosHandler) CrearUbicacion(c *gin.Context) {
	var req dto.CrearNombreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearUbicacion(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "crear", "ubicaciones", resp.ID, resp.Nombre)
	c.JSON(http.StatusCreated, apierror.OK(resp))
}

func (h *CatalogosHandler) ActualizarUbicacion(c *gin.Context) {
	var req dto.CrearNombreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarUbicacion(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "actualizar", "ubicaciones", resp.ID, resp.Nombre)
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *CatalogosHandler) EliminarUbicacion(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.EliminarUbicacion(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "eliminar", "ubicaciones", id, "")
	c.JSON(http.StatusOK, apierror.OK(gin.H{"id": id}))
}

// ── Unidades de medida ────────────────────────────────────────────────────────

func (h *CatalogosHandler) ListarUnidades(c *gin.Context) {
	resp, err := h.svc.ListarUnidades(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar unidades"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *CatalogosHandler) CrearUnidad(c *gin.Context) {
	var req dto.CrearUnidadMedidaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearUnidad(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "crear", "unidades", resp.ID, resp.Nombre)
	c.JSON(http.StatusCreated, apierror.OK(resp))
}

func (h *CatalogosHandler) ActualizarUnidad(c *gin.Context) {
	var req dto.ActualizarUnidadMedidaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarUnidad(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "actualizar", "unidades", resp.ID, resp.Nombre)
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *CatalogosHandler) EliminarUnidad(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.EliminarUnidad(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "eliminar", "unidades", id, "")
	c.JSON(http.StatusOK, apierror.OK(gin.H{"id": id}))
}
