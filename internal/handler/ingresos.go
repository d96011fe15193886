package handler

import (
	"net/http"
	"strconv"

	"github.com/Michael2410/AlmacenAppv1/internal/apierror"
	"github.com/Michael2410/AlmacenAppv1/internal/dto"
	"github.com/Michael2410/AlmacenAppv1/internal/service"
	"github.com/Michael2410/AlmacenAppv1/internal/worker"

	"github.com/gin-gonic/gin"
)

type IngresosHandler struct {
	svc service.IngresoService
	aud *worker.Auditor
}

func NewIngresosHandler(svc service.IngresoService, aud *worker.Auditor) *IngresosHandler {
	return &IngresosHandler{svc: svc, aud: aud}
}

func (h *IngresosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ingresos"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// Crear godoc
// @Summary      Registrar ingreso de stock
// @Description  Agrega una fila al ledger de ingresos. Los campos omitidos heredan los valores del producto.
// @Tags         ingresos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearIngresoRequest true "Detalle del ingreso"
// @Success      201 {object} apierror.Envelope{data=dto.IngresoResponse}
// @Failure      400 {object} apierror.Envelope
// @Router       /ingresos [post]
func (h *IngresosHandler) Crear(c *gin.Context) {
	var req dto.CrearIngresoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	auditar(h.aud, c, "crear", "ingresos", resp.ID, resp.ProductoNombre)
	c.JSON(http.StatusCreated, apierror.OK(resp))
}

// AlertasVencimiento lists batches close to their expiry date.
func (h *IngresosHandler) AlertasVencimiento(c *gin.Context) {
	dias, _ := strconv.Atoi(c.DefaultQuery("dias", "30"))
	resp, err := h.svc.AlertasVencimiento(c.Request.Context(), dias)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular alertas"))
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}
