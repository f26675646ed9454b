package client

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pest-control-api/internal/audit"
	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/client"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

type UpdateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		repo:  repo,
		audit: audit,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	id string,
	patch domain.Patch,
) (*models.Client, error) {

	c, err := uc.repo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Apply(c, patch, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveClient(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   audit.ActionClientUpdated,
		Entity:   audit.EntityClient,
		EntityID: c.ID,
	})

	return c, nil
}
