package handler

import (
	"net/http"
	"reflect"

	"github.com/Michael2410/AlmacenAppv1/internal/apierror"
	"github.com/Michael2410/AlmacenAppv1/internal/middleware"
	"github.com/Michael2410/AlmacenAppv1/internal/model"
	"github.com/Michael2410/AlmacenAppv1/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// auditar enqueues one audit trail entry for a mutation. Safe with a nil
// auditor (tests).
func auditar(aud *worker.Auditor, c *gin.Context, accion, modulo, entidadID, descripcion string) {
	if aud == nil {
		return
	}
	claims := middleware.GetClaims(c)
	if claims == nil {
		return
	}
	ip := c.ClientIP()
	ua := c.Request.UserAgent()
	entry := model.AuditLog{
		UsuarioID:     claims.UserID,
		UsuarioNombre: claims.Email,
		Accion:        accion,
		Modulo:        modulo,
		IP:            &ip,
		UserAgent:     &ua,
	}
	if entidadID != "" {
		entry.EntidadID = &entidadID
	}
	if descripcion != "" {
		entry.EntidadDescripcion = &descripcion
	}
	aud.Registrar(entry)
}
