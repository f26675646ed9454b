package service

import (
	"context"

	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/service"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context, f domain.Filter) ([]models.Service, error) {
	f.Limit = domain.MaxListResults
	return uc.repo.ListServices(ctx, f)
}
