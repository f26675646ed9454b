package client

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
	"github.com/BruksfildServices01/pest-control-api/internal/optional"
	"github.com/BruksfildServices01/pest-control-api/internal/validators"
)

// MaxListResults caps List; results beyond it are silently dropped.
const MaxListResults = 1000

var (
	ErrNotFound    = httperr.NotFoundErr("client_not_found", "Cliente não encontrado.")
	ErrHasServices = httperr.Conflict("client_has_services", "client has linked services")
)

type Repository interface {
	// ListClients orders by created_at desc. query, when non-empty, is
	// matched case-insensitively as a substring of name or phone.
	ListClients(ctx context.Context, query string, limit int) ([]models.Client, error)

	CreateClient(ctx context.Context, c *models.Client) error
	GetClient(ctx context.Context, id string) (*models.Client, error)
	GetClientsByIDs(ctx context.Context, ids []string) ([]models.Client, error)
	SaveClient(ctx context.Context, c *models.Client) error
	DeleteClient(ctx context.Context, id string) error

	ClientExists(ctx context.Context, id string) (bool, error)
	CountClients(ctx context.Context) (int64, error)
}

// Fields is the create payload.
type Fields struct {
	Name         string
	Phone        *string
	Address      *string
	City         *string
	Neighborhood *string
	Email        *string
}

// Patch carries the fields of an update. Absent and null fields are both
// left untouched.
type Patch struct {
	Name         optional.Field[string]
	Phone        optional.Field[string]
	Address      optional.Field[string]
	City         optional.Field[string]
	Neighborhood optional.Field[string]
	Email        optional.Field[string]
}

// New validates fields and builds a client stamped with now.
func New(id string, f Fields, now time.Time) (*models.Client, error) {
	c := &models.Client{
		ID:           id,
		Name:         strings.TrimSpace(f.Name),
		Phone:        validators.TrimOptional(f.Phone),
		Address:      validators.TrimOptional(f.Address),
		City:         validators.TrimOptional(f.City),
		Neighborhood: validators.TrimOptional(f.Neighborhood),
		Email:        validators.TrimOptional(f.Email),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply mutates c with the supplied fields and refreshes UpdatedAt even when
// nothing changed.
func Apply(c *models.Client, p Patch, now time.Time) error {
	next := *c

	if v, ok := p.Name.Get(); ok {
		next.Name = strings.TrimSpace(v)
	}
	applyOptional(&next.Phone, p.Phone)
	applyOptional(&next.Address, p.Address)
	applyOptional(&next.City, p.City)
	applyOptional(&next.Neighborhood, p.Neighborhood)
	applyOptional(&next.Email, p.Email)

	if err := validate(&next); err != nil {
		return err
	}

	next.UpdatedAt = now
	*c = next
	return nil
}

func applyOptional(dst **string, f optional.Field[string]) {
	v, ok := f.Get()
	if !ok {
		return
	}
	*dst = validators.TrimOptional(&v)
}

func validate(c *models.Client) error {
	fields := httperr.FieldErrors{}

	if !validators.LengthBetween(c.Name, 2, 120) {
		fields.Add("name", "deve ter entre 2 e 120 caracteres")
	}
	if c.Phone != nil && !validators.LengthBetween(*c.Phone, 1, 40) {
		fields.Add("phone", "deve ter no máximo 40 caracteres")
	}
	if c.Address != nil && !validators.LengthBetween(*c.Address, 1, 255) {
		fields.Add("address", "deve ter no máximo 255 caracteres")
	}
	if c.City != nil && !validators.LengthBetween(*c.City, 1, 120) {
		fields.Add("city", "deve ter no máximo 120 caracteres")
	}
	if c.Neighborhood != nil && !validators.LengthBetween(*c.Neighborhood, 1, 120) {
		fields.Add("neighborhood", "deve ter no máximo 120 caracteres")
	}
	if c.Email != nil && !validators.IsEmail(*c.Email) {
		fields.Add("email", "e-mail inválido")
	}

	return fields.Err()
}
