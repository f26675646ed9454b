package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pest-control-api/internal/audit"
	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit, err := queryInt(c, "limit", audit.DefaultListLimit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	limit = audit.NormalizeLimit(limit)

	logs, err := h.logger.List(c.Request.Context(), audit.Filter{
		Action: strings.TrimSpace(c.Query("action")),
		Entity: strings.TrimSpace(c.Query("entity")),
		Limit:  limit,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"limit": limit,
		"total": len(logs),
		"logs":  logs,
	})
}
