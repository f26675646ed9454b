package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/pest-control-api/internal/audit"
	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/service"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

type CreateService struct {
	repo    domain.Repository
	clients ClientLookup
	audit   *audit.Dispatcher
	now     func() time.Time
}

func NewCreateService(
	repo domain.Repository,
	clients ClientLookup,
	audit *audit.Dispatcher,
) *CreateService {
	return &CreateService{
		repo:    repo,
		clients: clients,
		audit:   audit,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	in domain.Input,
) (*models.Service, error) {

	s, err := domain.New(uuid.NewString(), in, uc.now())
	if err != nil {
		return nil, err
	}

	exists, err := uc.clients.ClientExists(ctx, s.ClientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrInvalidReference
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		Action:   audit.ActionServiceCreated,
		Entity:   audit.EntityService,
		EntityID: s.ID,
		Metadata: map[string]any{
			"client_id": s.ClientID,
			"date":      s.Date,
			"value":     s.Value,
			"status":    s.Status,
		},
	})

	return s, nil
}
