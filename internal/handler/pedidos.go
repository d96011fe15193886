package handler

import (
	"net/http"

	"github.com/Michael2410/AlmacenAppv1/internal/apierror"
	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/middleware"
	"github.com/Michael2410/AlmacenAppv1/internal/service"
	"github.com/Michael2410/AlmacenAppv1/internal/worker"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct {
	svc      service.PedidoService
	permisos service.PermisoService
	aud      *worker.Auditor
}

func NewPedidosHandler(svc service.PedidoService, permisos service.PermisoService, aud *worker.Auditor) *PedidosHandler {
	return &PedidosHandler{svc: svc, permisos: permisos, aud: aud}
}

// Crear godoc
// @Summary      Crear pedido individual
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearPedidoRequest true "Línea del pedido"
// @Success      201 {object} apierror.Envelope{data=dto.PedidoResponse}
// @Failure      400 {object} apierror.Envelope
// @Router       /pedidos [post]
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Crear(c.Request.Context(), claims.UserID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "crear", "pedidos", resp.ID, resp.ProductoNombre)
	c.JSON(http.StatusCreated, apierror.OK(resp))
}

// CrearLote registra varias líneas bajo un mismo lote. Las líneas inválidas
// se descartan y se reportan en el conteo.
func (h *PedidosHandler) CrearLote(c *gin.Context) {
	var req dto.CrearLoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.CrearLote(c.Request.Context(), claims.UserID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "crear", "pedidos", resp.LoteID, "lote de pedidos")
	c.JSON(http.StatusCreated, apierror.OK(resp))
}

// Listar devuelve todos los pedidos para gestores y sólo los propios para el
// resto de usuarios.
func (h *PedidosHandler) Listar(c *gin.Context) {
	claims := middleware.GetClaims(c)
	gestor, err := h.permisos.EsGestorPedidos(c.Request.Context(), claims.UserID, claims.RoleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al resolver permisos"))
		return
	}

	var resp []dto.PedidoResponse
	if gestor {
		resp, err = h.svc.Listar(c.Request.Context())
	} else {
		resp, err = h.svc.ListarMios(c.Request.Context(), claims.UserID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar pedidos"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// Mios devuelve sólo los pedidos del solicitante, sin importar sus permisos.
func (h *PedidosHandler) Mios(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ListarMios(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar pedidos"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// Admin es la vista de gestión: exige capacidad de gestor y devuelve todos
// los pedidos.
func (h *PedidosHandler) Admin(c *gin.Context) {
	claims := middleware.GetClaims(c)
	gestor, err := h.permisos.EsGestorPedidos(c.Request.Context(), claims.UserID, claims.RoleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al resolver permisos"))
		return
	}
	if !gestor {
		c.JSON(http.StatusForbidden, apierror.New("No tiene permisos para ver todos los pedidos"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar pedidos"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// ListarAgrupados arma la vista por lote con la misma regla de visibilidad
// que Listar.
func (h *PedidosHandler) ListarAgrupados(c *gin.Context) {
	claims := middleware.GetClaims(c)
	gestor, err := h.permisos.EsGestorPedidos(c.Request.Context(), claims.UserID, claims.RoleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al resolver permisos"))
		return
	}
	resp, err := h.svc.ListarAgrupados(c.Request.Context(), claims.UserID, gestor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar lotes"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// CambiarEstado aprueba o rechaza una línea individual.
func (h *PedidosHandler) CambiarEstado(c *gin.Context) {
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id := c.Param("id")
	resp, err := h.svc.CambiarEstado(c.Request.Context(), id, req.Estado, req.Observaciones)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, req.Estado, "pedidos", id, req.Observaciones)
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// CambiarEstadoLote aprueba o rechaza todas las líneas de un lote.
func (h *PedidosHandler) CambiarEstadoLote(c *gin.Context) {
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	loteID := c.Param("loteId")
	resp, err := h.svc.CambiarEstadoLote(c.Request.Context(), loteID, req.Estado, req.Observaciones)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, req.Estado, "pedidos", loteID, "lote completo")
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// EntregarLote godoc
// @Summary      Entregar un lote aprobado
// @Description  Revalida la disponibilidad de cada línea dentro de una transacción, crea las asignaciones y marca el lote entregado. Si una línea no alcanza, nada se entrega.
// @Tags         pedidos
// @Produce      json
// @Security     BearerAuth
// @Param        loteId path string true "ID del lote"
// @Success      200 {object} apierror.Envelope{data=[]dto.PedidoResponse}
// @Failure      400 {object} apierror.Envelope
// @Router       /pedidos/lote/{loteId}/entregar [post]
func (h *PedidosHandler) EntregarLote(c *gin.Context) {
	loteID := c.Param("loteId")
	resp, err := h.svc.EntregarLote(c.Request.Context(), loteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "entregar", "pedidos", loteID, "lote entregado")
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// AsignarPedido entrega una línea individual sin pasar por el lote.
func (h *PedidosHandler) AsignarPedido(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.svc.AsignarPedido(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "entregar", "pedidos", id, "pedido asignado")
	c.JSON(http.StatusOK, apierror.OK(resp))
}
