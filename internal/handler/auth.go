package handler

import (
	"net/http"

	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		writeErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Login exitoso.", gin.H{
		"token":   resp.Token,
		"usuario": resp.Usuario,
	})
}
