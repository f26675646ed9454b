package client

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/pest-control-api/internal/audit"
	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/client"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

type CreateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	fields domain.Fields,
) (*models.Client, error) {

	c, err := domain.New(uuid.NewString(), fields, uc.now())
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   audit.ActionClientCreated,
		Entity:   audit.EntityClient,
		EntityID: c.ID,
		Metadata: map[string]string{"name": c.Name},
	})

	return c, nil
}
