package client

import (
	"context"

	"github.com/BruksfildServices01/pest-control-api/internal/audit"
	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/client"
)

// ServiceCounter is the slice of the service ledger the delete guard needs.
type ServiceCounter interface {
	CountServicesByClient(ctx context.Context, clientID string) (int64, error)
}

type DeleteClient struct {
	repo     domain.Repository
	services ServiceCounter
	audit    *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	services ServiceCounter,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:     repo,
		services: services,
		audit:    audit,
	}
}

// Execute refuses to delete a client that still has services. The check and
// the delete are not atomic.
func (uc *DeleteClient) Execute(ctx context.Context, id string) error {
	if _, err := uc.repo.GetClient(ctx, id); err != nil {
		return err
	}

	n, err := uc.services.CountServicesByClient(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasServices
	}

	if err := uc.repo.DeleteClient(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   audit.ActionClientDeleted,
		Entity:   audit.EntityClient,
		EntityID: id,
	})
	return nil
}
