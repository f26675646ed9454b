package service

import (
	"context"
	"time"

	"github.com/BruksfildServices01/pest-control-api/internal/domain/calendar"
	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/service"
	"github.com/BruksfildServices01/pest-control-api/internal/dto"
)

const (
	DefaultAgendaDays = 14
	MaxAgendaDays     = 90
)

// Agenda lists the services from today through the next days, grouped by
// date. Today is taken in the business time zone.
type Agenda struct {
	repo    domain.Repository
	clients ClientLookup
	now     func() time.Time
}

func NewAgenda(
	repo domain.Repository,
	clients ClientLookup,
	now func() time.Time,
) *Agenda {
	return &Agenda{
		repo:    repo,
		clients: clients,
		now:     now,
	}
}

// Execute uses DefaultAgendaDays for days <= 0 and caps at MaxAgendaDays.
func (uc *Agenda) Execute(ctx context.Context, days int) (dto.AgendaDTO, error) {
	if days <= 0 {
		days = DefaultAgendaDays
	}
	if days > MaxAgendaDays {
		days = MaxAgendaDays
	}

	window := calendar.DaysFrom(calendar.FromTime(uc.now()), days)

	services, err := uc.repo.ListServicesBetween(ctx, window)
	if err != nil {
		return dto.AgendaDTO{}, err
	}

	names, err := clientNames(ctx, uc.clients, services)
	if err != nil {
		return dto.AgendaDTO{}, err
	}

	out := dto.AgendaDTO{
		From: window.From,
		To:   window.To,
		Days: make([]dto.AgendaDayDTO, 0),
	}

	for _, s := range services {
		if n := len(out.Days); n == 0 || out.Days[n-1].Date != s.Date {
			out.Days = append(out.Days, dto.AgendaDayDTO{Date: s.Date})
		}
		day := &out.Days[len(out.Days)-1]
		day.Services = append(day.Services, dto.AgendaItemDTO{
			ID:          s.ID,
			ClientID:    s.ClientID,
			ClientName:  names[s.ClientID],
			ServiceType: s.ServiceType,
			Value:       s.Value,
			Status:      s.Status,
			Notes:       s.Notes,
		})
	}

	return out, nil
}
