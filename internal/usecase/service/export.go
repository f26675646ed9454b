package service

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/BruksfildServices01/pest-control-api/internal/audit"
	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/service"
	"github.com/BruksfildServices01/pest-control-api/internal/dto"
	"github.com/BruksfildServices01/pest-control-api/internal/export"
	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
)

const exportName = "services"

var ErrArchiveDisabled = httperr.Unavailable("export_storage_disabled", "Armazenamento de exportações não configurado.")

// ExportServices writes the filtered ledger as CSV, honoring the same
// filters and cap as ListServices.
type ExportServices struct {
	repo    domain.Repository
	clients ClientLookup
}

func NewExportServices(repo domain.Repository, clients ClientLookup) *ExportServices {
	return &ExportServices{
		repo:    repo,
		clients: clients,
	}
}

func (uc *ExportServices) Execute(ctx context.Context, f domain.Filter, w io.Writer) (int, error) {
	f.Limit = domain.MaxListResults

	services, err := uc.repo.ListServices(ctx, f)
	if err != nil {
		return 0, err
	}

	names, err := clientNames(ctx, uc.clients, services)
	if err != nil {
		return 0, err
	}

	if err := export.WriteServicesCSV(w, services, names); err != nil {
		return 0, err
	}
	return len(services), nil
}

// KeyNamer names archived objects; *export.S3Uploader implements it.
type KeyNamer interface {
	Key(name string, at time.Time) string
}

type ArchiveUploader interface {
	export.Uploader
	KeyNamer
}

// ArchiveServices uploads a CSV export to object storage. A nil uploader
// means storage is not configured.
type ArchiveServices struct {
	exporter *ExportServices
	uploader ArchiveUploader
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewArchiveServices(
	exporter *ExportServices,
	uploader ArchiveUploader,
	audit *audit.Dispatcher,
) *ArchiveServices {
	return &ArchiveServices{
		exporter: exporter,
		uploader: uploader,
		audit:    audit,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (uc *ArchiveServices) Execute(ctx context.Context, f domain.Filter) (dto.ArchiveResponse, error) {
	if uc.uploader == nil {
		return dto.ArchiveResponse{}, ErrArchiveDisabled
	}

	var buf bytes.Buffer
	rows, err := uc.exporter.Execute(ctx, f, &buf)
	if err != nil {
		return dto.ArchiveResponse{}, err
	}

	key := uc.uploader.Key(exportName, uc.now())
	loc, err := uc.uploader.Upload(ctx, key, buf.Bytes(), export.ContentTypeCSV)
	if err != nil {
		return dto.ArchiveResponse{}, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   audit.ActionServicesArchived,
		Entity:   audit.EntityExport,
		EntityID: loc.Key,
		Metadata: map[string]any{"bucket": loc.Bucket, "rows": rows},
	})

	return dto.ArchiveResponse{
		Bucket: loc.Bucket,
		Key:    loc.Key,
		Rows:   rows,
	}, nil
}
