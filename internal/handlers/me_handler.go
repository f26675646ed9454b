package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pest-control-api/internal/domain/identity"
	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/httpresp"
	"github.com/BruksfildServices01/pest-control-api/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.Respond(c, identity.ErrUnknownSubject)
		return
	}

	httpresp.OK(c, user.Public())
}
