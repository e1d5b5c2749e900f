package handler

import (
	"net/http"

	"github.com/edulopezdev/barberiaLopez/internal/apierror"
	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/service"

	"github.com/gin-gonic/gin"
)

type TurnosHandler struct{ svc service.TurnoService }

func NewTurnosHandler(svc service.TurnoService) *TurnosHandler {
	return &TurnosHandler{svc: svc}
}

func (h *TurnosHandler) Crear(c *gin.Context) {
	var req dto.CrearTurnoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Turno creado correctamente.", gin.H{"turno": resp})
}

func (h *TurnosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Turno obtenido correctamente.", gin.H{"turno": resp})
}

func (h *TurnosHandler) Listar(c *gin.Context) {
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
		"turnos":     list,
		"pagination": pagination,
	})
}

func (h *TurnosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarTurnoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Turno actualizado correctamente.", gin.H{"turno": resp})
}

func (h *TurnosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Turno eliminado correctamente.", nil)
}
