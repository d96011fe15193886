package handler

import (
	"net/http"
	"strconv"

	"github.com/Michael2410/AlmacenAppv1/internal/apierror"
	"github.com/Michael2410/AlmacenAppv1/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Metrics(c *gin.Context) {
	resp, err := h.svc.Metrics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular métricas"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *DashboardHandler) Charts(c *gin.Context) {
	resp, err := h.svc.Charts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al armar las series"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// Actividad merges the latest movements of every ledger, newest first.
func (h *DashboardHandler) Actividad(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	resp, err := h.svc.Actividad(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar la actividad"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}
