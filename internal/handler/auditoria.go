package handler

import (
	"net/http"

	"github.com/Michael2410/AlmacenAppv1/internal/apierror"
	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/service"

	"github.com/gin-gonic/gin"
)

type AuditoriaHandler struct {
	svc service.AuditoriaService
}

func NewAuditoriaHandler(svc service.AuditoriaService) *AuditoriaHandler {
	return &AuditoriaHandler{svc: svc}
}

// Listar devuelve el rastro de auditoría filtrado por usuario, módulo o rango
// de fechas.
func (h *AuditoriaHandler) Listar(c *gin.Context) {
	var filtro dto.AuditoriaFiltro
	_ = c.ShouldBindQuery(&filtro)
	resp, err := h.svc.Listar(c.Request.Context(), filtro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar la auditoría"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

func (h *AuditoriaHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular las estadísticas de auditoría"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}
