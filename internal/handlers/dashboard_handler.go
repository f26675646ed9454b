package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/httpresp"
	ucdashboard "github.com/BruksfildServices01/pest-control-api/internal/usecase/dashboard"
)

type DashboardHandler struct {
	summary  *ucdashboard.GetSummary
	insights *ucdashboard.GetInsights
}

func NewDashboardHandler(
	summary *ucdashboard.GetSummary,
	insights *ucdashboard.GetInsights,
) *DashboardHandler {
	return &DashboardHandler{
		summary:  summary,
		insights: insights,
	}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	out, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *DashboardHandler) Insights(c *gin.Context) {
	out, err := h.insights.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}
