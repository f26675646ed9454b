package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pest-control-api/internal/dto"
	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/httpresp"
	ucidentity "github.com/BruksfildServices01/pest-control-api/internal/usecase/identity"
)

type AuthHandler struct {
	bootstrap *ucidentity.BootstrapStatus
	register  *ucidentity.Register
	login     *ucidentity.Login
}

func NewAuthHandler(
	bootstrap *ucidentity.BootstrapStatus,
	register *ucidentity.Register,
	login *ucidentity.Login,
) *AuthHandler {
	return &AuthHandler{
		bootstrap: bootstrap,
		register:  register,
		login:     login,
	}
}

// ======================================================
// BOOTSTRAP STATUS
// ======================================================
func (h *AuthHandler) BootstrapStatus(c *gin.Context) {
	hasUser, err := h.bootstrap.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.BootstrapStatusResponse{HasUser: hasUser})
}

// ======================================================
// REGISTER
// ======================================================
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.register.Execute(c.Request.Context(), req.Name, req.Username, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, user)
}

// ======================================================
// LOGIN
// ======================================================
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, token)
}
