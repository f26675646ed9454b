package audit

import (
	"context"

	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

const (
	ActionUserRegistered = "user_registered"

	ActionClientCreated = "client_created"
	ActionClientUpdated = "client_updated"
	ActionClientDeleted = "client_deleted"

	ActionServiceCreated = "service_created"
	ActionServiceUpdated = "service_updated"
	ActionServiceDeleted = "service_deleted"

	ActionServicesArchived = "services_archived"
)

const (
	EntityUser    = "user"
	EntityClient  = "client"
	EntityService = "service"
	EntityExport  = "export"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Event is one mutation to record. UserID is taken from the request
// identity when left empty.
type Event struct {
	UserID   string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

type Filter struct {
	Action string
	Entity string
	Limit  int
}

// Store persists audit rows. ListAuditLogs returns newest first.
type Store interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	ListAuditLogs(ctx context.Context, f Filter) ([]models.AuditLog, error)
}

// NormalizeLimit clamps a requested page size.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
