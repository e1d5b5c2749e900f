package handler

import (
	"net/http"
	"strconv"

	"github.com/edulopezdev/barberiaLopez/internal/apierror"
	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/middleware"
	"github.com/edulopezdev/barberiaLopez/internal/service"

	"github.com/gin-gonic/gin"
)

type AtencionesHandler struct{ svc service.AtencionService }

func NewAtencionesHandler(svc service.AtencionService) *AtencionesHandler {
	return &AtencionesHandler{svc: svc}
}

// Crear godoc
// @Summary Registra una atención con sus detalles
// @Tags atenciones
// @Accept json
// @Produce json
// @Param body body dto.CrearAtencionRequest true "Atención"
// @Success 201 {object} dto.AtencionResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/atencion [post]
func (h *AtencionesHandler) Crear(c *gin.Context) {
	var req dto.CrearAtencionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Crear(c.Request.Context(), claims.UserID, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Atención registrada correctamente.", gin.H{"atencion": resp})
}

func (h *AtencionesHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Atención obtenida correctamente.", gin.H{"atencion": resp})
}

func (h *AtencionesHandler) Listar(c *gin.Context) {
	var filter dto.PageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("Parámetros de paginación inválidos."))
		return
	}
	list, pagination, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Listado obtenido correctamente.", gin.H{
		"atenciones": list,
		"pagination": pagination,
	})
}

func (h *AtencionesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarAtencionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Atención actualizada correctamente.", gin.H{"atencion": resp})
}

func (h *AtencionesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Atención eliminada correctamente.", nil)
}

// ResumenBarbero godoc
// @Summary Resumen mensual de un barbero
// @Tags atenciones
// @Produce json
// @Param barberoId query int true "ID del barbero"
// @Param mes query int true "Mes (1-12)"
// @Param anio query int true "Año"
// @Success 200 {object} dto.ResumenBarberoResponse
// @Router /api/atencion/resumen-barbero [get]
func (h *AtencionesHandler) ResumenBarbero(c *gin.Context) {
	barberoID, err := strconv.ParseUint(c.Query("barberoId"), 10, 32)
	if err != nil || barberoID == 0 {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("El parámetro barberoId es inválido."))
		return
	}
	mes, err := strconv.Atoi(c.Query("mes"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("El parámetro mes es inválido."))
		return
	}
	anio, err := strconv.Atoi(c.Query("anio"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("El parámetro anio es inválido."))
		return
	}
	resp, err := h.svc.ResumenBarbero(c.Request.Context(), uint(barberoID), mes, anio)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Resumen obtenido correctamente.", gin.H{"resumen": resp})
}
