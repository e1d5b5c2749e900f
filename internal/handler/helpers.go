package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/edulopezdev/barberiaLopez/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, lte=10000 work without panicking ("Bad field type decimal.Decimal").
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
		c.JSON(http.StatusBadRequest, apierror.BadRequest("JSON inválido: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

// bindFormAndValidate is the multipart/form counterpart, used by the catalog
// endpoints that may carry an image file.
func bindFormAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("Formulario inválido: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

func runValidation(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.Validation(fields))
		return false
	}
	return true
}

// parseID reads the :id route param as an unsigned integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("El id de la ruta es inválido."))
		return 0, false
	}
	return uint(id), true
}

// respond writes the success envelope {status, message, ...payload}. Payload
// keys are merged at the top level, matching what clients already consume.
func respond(c *gin.Context, status int, message string, payload gin.H) {
	body := gin.H{
		"status":  status,
		"message": message,
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// writeErr maps service errors to the error envelope. Anything that is not an
// *apierror.APIError is an unexpected failure: logged with detail, reported
// as a generic 500.
func writeErr(c *gin.Context, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, apiErr)
		return
	}
	log.Error().
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Err(err).
		Msg("unexpected service error")
	c.JSON(http.StatusInternalServerError, apierror.Internal("Error interno del servidor."))
}
