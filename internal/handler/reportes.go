package handler

import (
	"net/http"

	"github.com/Michael2410/AlmacenAppv1/internal/apierror"
	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportesHandler expone los reportes operativos. Todos aceptan los mismos
// filtros por query string: desde, hasta, productoId, usuarioId y areaId.
type ReportesHandler struct {
	svc service.ReporteService
}

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

func filtroDesdeQuery(c *gin.Context) dto.ReporteFiltro {
	var filtro dto.ReporteFiltro
	_ = c.ShouldBindQuery(&filtro)
	return filtro
}

// Inventario godoc
// @Summary      Inventario valorizado por producto
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        productoId query string false "Filtrar por producto"
// @Param        areaId query string false "Filtrar por área"
// @Success      200 {object} apierror.Envelope{data=[]dto.ReporteInventarioRow}
// @Router       /reportes/inventario [get]
func (h *ReportesHandler) Inventario(c *gin.Context) {
	resp, err := h.svc.Inventario(c.Request.Context(), filtroDesdeQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte de inventario"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *ReportesHandler) Ingresos(c *gin.Context) {
	resp, err := h.svc.Ingresos(c.Request.Context(), filtroDesdeQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte de ingresos"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *ReportesHandler) Asignaciones(c *gin.Context) {
	resp, err := h.svc.Asignaciones(c.Request.Context(), filtroDesdeQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte de asignaciones"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *ReportesHandler) Salidas(c *gin.Context) {
	resp, err := h.svc.Salidas(c.Request.Context(), filtroDesdeQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte de salidas"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *ReportesHandler) Pedidos(c *gin.Context) {
	resp, err := h.svc.Pedidos(c.Request.Context(), filtroDesdeQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte de pedidos"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *ReportesHandler) StockUsuarios(c *gin.Context) {
	resp, err := h.svc.StockPorUsuario(c.Request.Context(), filtroDesdeQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte de stock por usuario"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *ReportesHandler) Movimientos(c *gin.Context) {
	resp, err := h.svc.Movimientos(c.Request.Context(), filtroDesdeQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte de movimientos"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *ReportesHandler) StockBajo(c *gin.Context) {
	resp, err := h.svc.StockBajo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte de stock bajo"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// Resumen godoc
// @Summary      Resumen ejecutivo del período
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        desde query string false "Fecha inicial (YYYY-MM-DD)"
// @Param        hasta query string false "Fecha final (YYYY-MM-DD)"
// @Success      200 {object} apierror.Envelope{data=dto.ResumenEjecutivo}
// @Router       /reportes/resumen [get]
func (h *ReportesHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Resumen(c.Request.Context(), filtroDesdeQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el resumen"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}
