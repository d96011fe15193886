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

// StockHandler cubre el inventario derivado: el stock general del almacén, el
// inventario personal de cada usuario, las asignaciones y las salidas.
type StockHandler struct {
	svc      service.StockService
	permisos service.PermisoService
	aud      *worker.Auditor
}

func NewStockHandler(svc service.StockService, permisos service.PermisoService, aud *worker.Auditor) *StockHandler {
	return &StockHandler{svc: svc, permisos: permisos, aud: aud}
}

// StockGeneral godoc
// @Summary      Disponibilidad por producto y marca
// @Description  Deriva ingresado, asignado y disponible para cada combinación producto+marca vista en los ingresos. Nunca se cachea.
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} apierror.Envelope{data=[]dto.StockGeneralItem}
// @Router       /stock/general [get]
func (h *StockHandler) StockGeneral(c *gin.Context) {
	resp, err := h.svc.StockGeneral(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular el stock general"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// StockMio devuelve el inventario personal del usuario autenticado.
func (h *StockHandler) StockMio(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.StockMio(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular tu inventario"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *StockHandler) Asignar(c *gin.Context) {
	var req dto.AsignacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Asignar(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "asignar", "inventario", resp.ID, "asignación a "+req.UsuarioID)
	c.JSON(http.StatusCreated, apierror.OK(resp))
}

// ListarAsignaciones devuelve todas las asignaciones para gestores y sólo las
// propias para el resto.
func (h *StockHandler) ListarAsignaciones(c *gin.Context) {
	claims := middleware.GetClaims(c)
	gestor, err := h.permisos.EsGestorPedidos(c.Request.Context(), claims.UserID, claims.RoleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al resolver permisos"))
		return
	}

	var resp []dto.AsignacionResponse
	if gestor {
		resp, err = h.svc.ListarAsignaciones(c.Request.Context())
	} else {
		resp, err = h.svc.ListarAsignacionesUsuario(c.Request.Context(), claims.UserID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar asignaciones"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// RegistrarSalida descuenta del inventario personal del usuario autenticado.
func (h *StockHandler) RegistrarSalida(c *gin.Context) {
	var req dto.SalidaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.RegistrarSalida(c.Request.Context(), claims.UserID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	descripcion := ""
	if req.Observacion != nil {
		descripcion = *req.Observacion
	}
	auditar(h.aud, c, "salida", "inventario", resp.ID, descripcion)
	c.JSON(http.StatusCreated, apierror.OK(resp))
}

func (h *StockHandler) ListarSalidas(c *gin.Context) {
	claims := middleware.GetClaims(c)
	gestor, err := h.permisos.EsGestorPedidos(c.Request.Context(), claims.UserID, claims.RoleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al resolver permisos"))
		return
	}

	var resp []dto.SalidaResponse
	if gestor {
		resp, err = h.svc.ListarSalidas(c.Request.Context())
	} else {
		resp, err = h.svc.ListarSalidasUsuario(c.Request.Context(), claims.UserID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar salidas"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}
