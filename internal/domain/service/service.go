package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/BruksfildServices01/pest-control-api/internal/domain/calendar"
	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
	"github.com/BruksfildServices01/pest-control-api/internal/optional"
	"github.com/BruksfildServices01/pest-control-api/internal/validators"
)

// MaxListResults caps List; results beyond it are silently dropped.
const MaxListResults = 2000

var (
	ErrNotFound         = httperr.NotFoundErr("service_not_found", "Serviço não encontrado.")
	ErrInvalidReference = httperr.InvalidReference("invalid_client_reference", "Cliente informado não existe.")
)

// Filter narrows List. Zero values mean "no filter"; From and To are
// inclusive.
type Filter struct {
	Status   Status
	From     calendar.Date
	To       calendar.Date
	ClientID string
	Limit    int
}

type Repository interface {
	// ListServices orders by date desc, then created_at desc.
	ListServices(ctx context.Context, f Filter) ([]models.Service, error)

	// ListServicesBetween returns every service dated within w, ordered by
	// date asc. It is not capped.
	ListServicesBetween(ctx context.Context, w calendar.Window) ([]models.Service, error)

	// ListAllServices is an uncapped scan used by insights and exports.
	ListAllServices(ctx context.Context) ([]models.Service, error)

	CreateService(ctx context.Context, s *models.Service) error
	GetService(ctx context.Context, id string) (*models.Service, error)
	SaveService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id string) error

	CountServicesByClient(ctx context.Context, clientID string) (int64, error)
}

// Input is the create payload as received; dates and statuses are parsed
// here so that problems surface as field errors.
type Input struct {
	ClientID    string
	Date        string
	ServiceType string
	Value       *float64
	Status      *string
	Notes       *string
}

// Patch carries the fields of an update. Absent and null fields are both
// left untouched.
type Patch struct {
	ClientID    optional.Field[string]
	Date        optional.Field[string]
	ServiceType optional.Field[string]
	Value       optional.Field[float64]
	Status      optional.Field[string]
	Notes       optional.Field[string]
}

// NewClientID reports the client id a patch wants to move the service to.
func (p Patch) NewClientID() (string, bool) {
	v, ok := p.ClientID.Get()
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// New validates in and builds a service stamped with now. The client
// reference is checked by the caller.
func New(id string, in Input, now time.Time) (*models.Service, error) {
	fields := httperr.FieldErrors{}

	s := &models.Service{
		ID:          id,
		ClientID:    strings.TrimSpace(in.ClientID),
		ServiceType: strings.TrimSpace(in.ServiceType),
		Status:      string(InitialStatus()),
		Notes:       validators.TrimOptional(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if s.ClientID == "" {
		fields.Add("client_id", "obrigatório")
	}

	if d, err := calendar.Parse(in.Date); err != nil {
		fields.Add("date", "data inválida (use AAAA-MM-DD)")
	} else {
		s.Date = d
	}

	if in.Value != nil {
		s.Value = *in.Value
	}

	if in.Status != nil {
		if st, ok := ParseStatus(*in.Status); ok {
			s.Status = string(st)
		} else {
			fields.Add("status", "use PENDING ou COMPLETED")
		}
	}

	validate(s, fields)
	if err := fields.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply mutates s with the supplied fields and refreshes UpdatedAt even when
// nothing changed. The new client reference, if any, is checked by the
// caller.
func Apply(s *models.Service, p Patch, now time.Time) error {
	fields := httperr.FieldErrors{}
	next := *s

	if v, ok := p.NewClientID(); ok {
		next.ClientID = v
		if v == "" {
			fields.Add("client_id", "obrigatório")
		}
	}
	if v, ok := p.Date.Get(); ok {
		if d, err := calendar.Parse(v); err != nil {
			fields.Add("date", "data inválida (use AAAA-MM-DD)")
		} else {
			next.Date = d
		}
	}
	if v, ok := p.ServiceType.Get(); ok {
		next.ServiceType = strings.TrimSpace(v)
	}
	if v, ok := p.Value.Get(); ok {
		next.Value = v
	}
	if v, ok := p.Status.Get(); ok {
		if st, ok := ParseStatus(v); ok {
			next.Status = string(st)
		} else {
			fields.Add("status", "use PENDING ou COMPLETED")
		}
	}
	if v, ok := p.Notes.Get(); ok {
		next.Notes = validators.TrimOptional(&v)
	}

	validate(&next, fields)
	if err := fields.Err(); err != nil {
		return err
	}

	next.UpdatedAt = now
	*s = next
	return nil
}

// ParseFilter turns raw query parameters into a Filter.
func ParseFilter(status, from, to, clientID string) (Filter, error) {
	fields := httperr.FieldErrors{}
	f := Filter{ClientID: strings.TrimSpace(clientID)}

	if strings.TrimSpace(status) != "" {
		if st, ok := ParseStatus(status); ok {
			f.Status = st
		} else {
			fields.Add("status", "use PENDING ou COMPLETED")
		}
	}
	if strings.TrimSpace(from) != "" {
		if d, err := calendar.Parse(from); err == nil {
			f.From = d
		} else {
			fields.Add("from", "data inválida (use AAAA-MM-DD)")
		}
	}
	if strings.TrimSpace(to) != "" {
		if d, err := calendar.Parse(to); err == nil {
			f.To = d
		} else {
			fields.Add("to", "data inválida (use AAAA-MM-DD)")
		}
	}

	if err := fields.Err(); err != nil {
		return Filter{}, err
	}
	return f, nil
}

// Matches reports whether s passes f. Stores that cannot push filters down
// use it directly.
func (f Filter) Matches(s *models.Service) bool {
	if f.Status != "" && s.Status != string(f.Status) {
		return false
	}
	if !f.From.IsZero() && s.Date < f.From {
		return false
	}
	if !f.To.IsZero() && s.Date > f.To {
		return false
	}
	if f.ClientID != "" && s.ClientID != f.ClientID {
		return false
	}
	return true
}

func validate(s *models.Service, fields httperr.FieldErrors) {
	if !validators.LengthBetween(s.ServiceType, 2, 160) {
		fields.Add("service_type", "deve ter entre 2 e 160 caracteres")
	}
	if s.Value < 0 || math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
		fields.Add("value", "deve ser um valor maior ou igual a zero")
	}
	if s.Notes != nil && !validators.LengthBetween(*s.Notes, 1, 500) {
		fields.Add("notes", "deve ter no máximo 500 caracteres")
	}
}
