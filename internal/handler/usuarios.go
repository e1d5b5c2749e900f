package handler

import (
	"context"
	"net/http"

	"github.com/edulopezdev/barberiaLopez/internal/apierror"
	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/middleware"
	"github.com/edulopezdev/barberiaLopez/internal/model"
	"github.com/edulopezdev/barberiaLopez/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct{ svc service.UsuarioService }

func NewUsuariosHandler(svc service.UsuarioService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Crear godoc
// @Summary Alta de usuario (cliente o personal)
// @Tags usuarios
// @Accept json
// @Produce json
// @Param body body dto.CrearUsuarioRequest true "Datos del usuario"
// @Success 201 {object} dto.UsuarioResponse
// @Failure 400 {object} apierror.APIError
// @Failure 403 {object} apierror.APIError
// @Router /api/usuarios [post]
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Crear(c.Request.Context(), model.NombreRol(claims.Rol), claims.UserID, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Usuario creado correctamente.", gin.H{"usuario": resp})
}

func (h *UsuariosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Usuario obtenido correctamente.", gin.H{"usuario": resp})
}

func (h *UsuariosHandler) Listar(c *gin.Context) {
	h.listar(c, h.svc.Listar, "usuarios")
}

func (h *UsuariosHandler) ListarClientes(c *gin.Context) {
	h.listar(c, h.svc.ListarClientes, "clientes")
}

func (h *UsuariosHandler) ListarBarberos(c *gin.Context) {
	h.listar(c, h.svc.ListarBarberos, "barberos")
}

func (h *UsuariosHandler) ListarConAcceso(c *gin.Context) {
	h.listar(c, h.svc.ListarConAcceso, "usuarios")
}

func (h *UsuariosHandler) listar(
	c *gin.Context,
	fn func(context.Context, dto.PageFilter) ([]dto.UsuarioResponse, dto.Pagination, error),
	key string,
) {
	var filter dto.PageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("Parámetros de paginación inválidos."))
		return
	}
	list, pagination, err := fn(c.Request.Context(), filter)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Listado obtenido correctamente.", gin.H{
		key:          list,
		"pagination": pagination,
	})
}

func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Actualizar(c.Request.Context(), model.NombreRol(claims.Rol), claims.UserID, id, req)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Usuario actualizado correctamente.", gin.H{"usuario": resp})
}

func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Usuario eliminado correctamente.", nil)
}

func (h *UsuariosHandler) CambiarEstado(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CambiarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.CambiarEstado(c.Request.Context(), id, req.Activo); err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Estado actualizado correctamente.", nil)
}
