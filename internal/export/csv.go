// Package export renders the service ledger as CSV and archives it to
// object storage.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

const ContentTypeCSV = "text/csv; charset=utf-8"

var servicesHeader = []string{
	"id",
	"date",
	"client_id",
	"client_name",
	"service_type",
	"value",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

// WriteServicesCSV writes a header and one row per service. clientNames may
// miss entries; the column is then left blank.
func WriteServicesCSV(w io.Writer, services []models.Service, clientNames map[string]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(servicesHeader); err != nil {
		return err
	}

	for _, s := range services {
		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
		}

		if err := cw.Write([]string{
			s.ID,
			s.Date.String(),
			s.ClientID,
			clientNames[s.ClientID],
			s.ServiceType,
			strconv.FormatFloat(s.Value, 'f', 2, 64),
			s.Status,
			notes,
			s.CreatedAt.UTC().Format(time.RFC3339),
			s.UpdatedAt.UTC().Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
