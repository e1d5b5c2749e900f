package handler

import (
	"net/http"

	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/service"

	"github.com/gin-gonic/gin"
)

type PagosHandler struct{ svc service.PagoService }

func NewPagosHandler(svc service.PagoService) *PagosHandler {
	return &PagosHandler{svc: svc}
}

// Crear godoc
// @Summary Registra un pago contra una atención
// @Tags pagos
// @Accept json
// @Produce json
// @Param body body dto.CrearPagoRequest true "Pago"
// @Success 201 {object} dto.CrearPagoResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/pagos [post]
func (h *PagosHandler) Crear(c *gin.Context) {
	var req dto.CrearPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeErr(c, err)
		return
	}
	payload := gin.H{"pago": resp.Pago}
	if resp.Advertencia != "" {
		payload["advertencia"] = resp.Advertencia
	}
	respond(c, http.StatusCreated, "Pago registrado correctamente.", payload)
}

func (h *PagosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Pago obtenido correctamente.", gin.H{"pago": resp})
}

func (h *PagosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Pago eliminado correctamente.", nil)
}

// ListarPorAtencion lists every payment of one atencion, oldest first.
func (h *PagosHandler) ListarPorAtencion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pagos, err := h.svc.ListarPorAtencion(c.Request.Context(), id)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Pagos obtenidos correctamente.", gin.H{"pagos": pagos})
}
