package dashboard

import (
	"context"

	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/dashboard"
	"github.com/BruksfildServices01/pest-control-api/internal/domain/service"
)

type GetInsights struct {
	services service.Repository
}

func NewGetInsights(services service.Repository) *GetInsights {
	return &GetInsights{services: services}
}

func (uc *GetInsights) Execute(ctx context.Context) (domain.Insights, error) {
	all, err := uc.services.ListAllServices(ctx)
	if err != nil {
		return domain.Insights{}, err
	}
	return domain.BuildInsights(all), nil
}
