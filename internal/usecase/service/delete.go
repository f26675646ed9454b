package service

import (
	"context"

	"github.com/BruksfildServices01/pest-control-api/internal/audit"
	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/service"
)

type DeleteService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteService {
	return &DeleteService{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteService) Execute(ctx context.Context, id string) error {
	if err := uc.repo.DeleteService(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   audit.ActionServiceDeleted,
		Entity:   audit.EntityService,
		EntityID: id,
	})
	return nil
}
