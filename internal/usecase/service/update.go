package service

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pest-control-api/internal/audit"
	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/service"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

type UpdateService struct {
	repo    domain.Repository
	clients ClientLookup
	audit   *audit.Dispatcher
	now     func() time.Time
}

func NewUpdateService(
	repo domain.Repository,
	clients ClientLookup,
	audit *audit.Dispatcher,
) *UpdateService {
	return &UpdateService{
		repo:    repo,
		clients: clients,
		audit:   audit,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	id string,
	patch domain.Patch,
) (*models.Service, error) {

	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	previousStatus := s.Status

	if err := domain.Apply(s, patch, uc.now()); err != nil {
		return nil, err
	}

	if clientID, ok := patch.NewClientID(); ok {
		exists, err := uc.clients.ClientExists(ctx, clientID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrInvalidReference
		}
	}

	if err := uc.repo.SaveService(ctx, s); err != nil {
		return nil, err
	}

	meta := map[string]any{}
	if previousStatus != s.Status {
		meta["status_from"] = previousStatus
		meta["status_to"] = s.Status
	}
	uc.audit.Dispatch(ctx, audit.Event{
		Action:   audit.ActionServiceUpdated,
		Entity:   audit.EntityService,
		EntityID: s.ID,
		Metadata: meta,
	})

	return s, nil
}
