package service

import (
	"context"

	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

// ClientLookup is the slice of the client registry the ledger depends on.
type ClientLookup interface {
	ClientExists(ctx context.Context, id string) (bool, error)
	GetClientsByIDs(ctx context.Context, ids []string) ([]models.Client, error)
}

// clientNames resolves display names for the clients referenced by services.
func clientNames(ctx context.Context, clients ClientLookup, services []models.Service) (map[string]string, error) {
	seen := map[string]struct{}{}
	ids := make([]string, 0)
	for _, s := range services {
		if _, ok := seen[s.ClientID]; ok {
			continue
		}
		seen[s.ClientID] = struct{}{}
		ids = append(ids, s.ClientID)
	}

	found, err := clients.GetClientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(found))
	for _, c := range found {
		names[c.ID] = c.Name
	}
	return names, nil
}
