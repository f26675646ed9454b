package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

type Logger struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Logger {
	return &Logger{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		ID:        uuid.NewString(),
		UserID:    ev.UserID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: l.now(),
	}

	return l.store.CreateAuditLog(ctx, &row)
}

func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, error) {
	f.Limit = NormalizeLimit(f.Limit)
	return l.store.ListAuditLogs(ctx, f)
}
