package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pest-control-api/internal/domain/calendar"
	"github.com/BruksfildServices01/pest-control-api/internal/domain/client"
	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/dashboard"
	"github.com/BruksfildServices01/pest-control-api/internal/domain/service"
)

// GetSummary reports the current month, where "current" is decided by the
// injected clock (the business time zone in production).
type GetSummary struct {
	clients  client.Repository
	services service.Repository
	now      func() time.Time
}

func NewGetSummary(
	clients client.Repository,
	services service.Repository,
	now func() time.Time,
) *GetSummary {
	return &GetSummary{
		clients:  clients,
		services: services,
		now:      now,
	}
}

func (uc *GetSummary) Execute(ctx context.Context) (domain.Summary, error) {
	window := calendar.MonthWindow(uc.now())

	total, err := uc.clients.CountClients(ctx)
	if err != nil {
		return domain.Summary{}, err
	}

	monthServices, err := uc.services.ListServicesBetween(ctx, window)
	if err != nil {
		return domain.Summary{}, err
	}

	return domain.Summarize(window, total, monthServices), nil
}
