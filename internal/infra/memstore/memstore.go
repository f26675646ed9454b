// Package memstore keeps every repository in process memory. It backs
// STORE_DRIVER=memory and the test suites.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/BruksfildServices01/pest-control-api/internal/audit"
	"github.com/BruksfildServices01/pest-control-api/internal/domain/calendar"
	"github.com/BruksfildServices01/pest-control-api/internal/domain/client"
	"github.com/BruksfildServices01/pest-control-api/internal/domain/identity"
	"github.com/BruksfildServices01/pest-control-api/internal/domain/service"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

type Store struct {
	mu sync.RWMutex

	users    map[string]models.User
	clients  map[string]models.Client
	services map[string]models.Service
	audit    []models.AuditLog
}

var (
	_ identity.Repository = (*Store)(nil)
	_ client.Repository   = (*Store)(nil)
	_ service.Repository  = (*Store)(nil)
	_ audit.Store         = (*Store)(nil)
)

func New() *Store {
	return &Store{
		users:    map[string]models.User{},
		clients:  map[string]models.Client{},
		services: map[string]models.Service{},
	}
}

// ======================================================
// USERS
// ======================================================

func (s *Store) CountUsers(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return identity.ErrUsernameTaken
		}
	}
	s.users[u.ID] = *u
	return nil
}

func (s *Store) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, identity.ErrUserNotFound
}

func (s *Store) FindUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return &u, nil
}

// ======================================================
// CLIENTS
// ======================================================

func (s *Store) ListClients(_ context.Context, query string, limit int) ([]models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Client, 0, len(s.clients))
	for _, c := range s.clients {
		if query != "" && !clientMatches(&c, query) {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func clientMatches(c *models.Client, query string) bool {
	if strings.Contains(strings.ToLower(c.Name), query) {
		return true
	}
	return c.Phone != nil && strings.Contains(strings.ToLower(*c.Phone), query)
}

func (s *Store) CreateClient(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.ID] = *c
	return nil
}

func (s *Store) GetClient(_ context.Context, id string) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	return &c, nil
}

func (s *Store) GetClientsByIDs(_ context.Context, ids []string) ([]models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Client, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.clients[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) SaveClient(_ context.Context, c *models.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.clients[c.ID]
	if !ok {
		return client.ErrNotFound
	}
	next := *c
	next.CreatedAt = existing.CreatedAt
	s.clients[c.ID] = next
	return nil
}

func (s *Store) DeleteClient(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return client.ErrNotFound
	}
	delete(s.clients, id)
	return nil
}

func (s *Store) ClientExists(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.clients[id]
	return ok, nil
}

func (s *Store) CountClients(context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.clients)), nil
}

// ======================================================
// SERVICES
// ======================================================

func (s *Store) ListServices(_ context.Context, f service.Filter) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0)
	for _, sv := range s.services {
		if f.Matches(&sv) {
			out = append(out, sv)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	limit := f.Limit
	if limit <= 0 || limit > service.MaxListResults {
		limit = service.MaxListResults
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) ListServicesBetween(_ context.Context, w calendar.Window) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0)
	for _, sv := range s.services {
		if w.Contains(sv.Date) {
			out = append(out, sv)
		}
	}
	sortAscending(out)
	return out, nil
}

func (s *Store) ListAllServices(context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0, len(s.services))
	for _, sv := range s.services {
		out = append(out, sv)
	}
	sortAscending(out)
	return out, nil
}

func sortAscending(out []models.Service) {
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}

func (s *Store) CreateService(_ context.Context, sv *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[sv.ID] = *sv
	return nil
}

func (s *Store) GetService(_ context.Context, id string) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sv, ok := s.services[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return &sv, nil
}

func (s *Store) SaveService(_ context.Context, sv *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.services[sv.ID]
	if !ok {
		return service.ErrNotFound
	}
	next := *sv
	next.CreatedAt = existing.CreatedAt
	s.services[sv.ID] = next
	return nil
}

func (s *Store) DeleteService(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		return service.ErrNotFound
	}
	delete(s.services, id)
	return nil
}

func (s *Store) CountServicesByClient(_ context.Context, clientID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, sv := range s.services {
		if sv.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

// ======================================================
// AUDIT
// ======================================================

func (s *Store) CreateAuditLog(_ context.Context, log *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = append(s.audit, *log)
	return nil
}

func (s *Store) ListAuditLogs(_ context.Context, f audit.Filter) ([]models.AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AuditLog, 0)
	for i := len(s.audit) - 1; i >= 0; i-- {
		row := s.audit[i]
		if f.Action != "" && row.Action != f.Action {
			continue
		}
		if f.Entity != "" && row.Entity != f.Entity {
			continue
		}
		out = append(out, row)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}
