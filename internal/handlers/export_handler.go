package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pest-control-api/internal/export"
	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/httpresp"
	ucservice "github.com/BruksfildServices01/pest-control-api/internal/usecase/service"
)

type ExportHandler struct {
	exporter *ucservice.ExportServices
	archive  *ucservice.ArchiveServices
	now      func() time.Time
}

func NewExportHandler(
	exporter *ucservice.ExportServices,
	archive *ucservice.ArchiveServices,
	now func() time.Time,
) *ExportHandler {
	return &ExportHandler{
		exporter: exporter,
		archive:  archive,
		now:      now,
	}
}

// ======================================================
// CSV DOWNLOAD
// ======================================================
func (h *ExportHandler) ServicesCSV(c *gin.Context) {
	f, err := serviceFilter(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var buf bytes.Buffer
	if _, err := h.exporter.Execute(c.Request.Context(), f, &buf); err != nil {
		httperr.Respond(c, err)
		return
	}

	filename := fmt.Sprintf("services-%s.csv", h.now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, export.ContentTypeCSV, buf.Bytes())
}

// ======================================================
// ARCHIVE TO OBJECT STORAGE
// ======================================================
func (h *ExportHandler) ArchiveServices(c *gin.Context) {
	f, err := serviceFilter(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out, err := h.archive.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}
