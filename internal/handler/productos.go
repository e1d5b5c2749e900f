package handler

import (
	"net/http"

	"github.com/edulopezdev/barberiaLopez/internal/apierror"
	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Crear godoc
// @Summary Alta de producto o servicio
// @Tags productos
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.ProductoResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/productosservicios [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	// The image is optional; FormFile errors just mean "no file".
	imagen, _ := c.FormFile("imagen")

	resp, err := h.svc.Crear(c.Request.Context(), req, imagen)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Producto o servicio creado correctamente.", gin.H{"producto": resp})
}

func (h *ProductosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Producto o servicio obtenido correctamente.", gin.H{"producto": resp})
}

func (h *ProductosHandler) ListarAlmacenables(c *gin.Context) {
	filter, ok := bindProductoFilter(c)
	if !ok {
		return
	}
	list, pagination, err := h.svc.ListarAlmacenables(c.Request.Context(), filter)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Listado obtenido correctamente.", gin.H{
		"productos":  list,
		"pagination": pagination,
	})
}

func (h *ProductosHandler) ListarNoAlmacenables(c *gin.Context) {
	filter, ok := bindProductoFilter(c)
	if !ok {
		return
	}
	list, pagination, err := h.svc.ListarNoAlmacenables(c.Request.Context(), filter)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Listado obtenido correctamente.", gin.H{
		"servicios":  list,
		"pagination": pagination,
	})
}

func bindProductoFilter(c *gin.Context) (dto.ProductoFilter, bool) {
	var filter dto.ProductoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.BadRequest("Parámetros de filtro inválidos."))
		return filter, false
	}
	return filter, true
}

func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindFormAndValidate(c, &req) {
		return
	}
	imagen, _ := c.FormFile("imagen")

	resp, err := h.svc.Actualizar(c.Request.Context(), id, req, imagen)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Producto o servicio actualizado correctamente.", gin.H{"producto": resp})
}

// ObtenerImagen streams the active image file of a catalog row.
func (h *ProductosHandler) ObtenerImagen(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ruta, err := h.svc.ObtenerImagen(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.File(ruta)
}

func (h *ProductosHandler) EliminarImagen(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.EliminarImagen(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Imagen eliminada correctamente.", nil)
}

func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Producto o servicio eliminado correctamente.", nil)
}
