package handler

import (
	"net/http"

	"github.com/edulopezdev/barberiaLopez/internal/apierror"
	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/service"

	"github.com/gin-gonic/gin"
)

type DetallesHandler struct{ svc service.DetalleService }

func NewDetallesHandler(svc service.DetalleService) *DetallesHandler {
	return &DetallesHandler{svc: svc}
}

func (h *DetallesHandler) Crear(c *gin.Context) {
	var req dto.CrearDetalleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Detalle creado correctamente.", gin.H{"detalle": resp})
}

func (h *DetallesHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Detalle obtenido correctamente.", gin.H{"detalle": resp})
}

func (h *DetallesHandler) Listar(c *gin.Context) {
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
		"detalles":   list,
		"pagination": pagination,
	})
}

func (h *DetallesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarDetalleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Detalle actualizado correctamente.", gin.H{"detalle": resp})
}

func (h *DetallesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Detalle eliminado correctamente.", nil)
}
