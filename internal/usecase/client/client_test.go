package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/client"
	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/infra/memstore"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
	"github.com/BruksfildServices01/pest-control-api/internal/optional"
)

func ptr(s string) *string { return &s }

func TestCreateAndSearch(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	create := NewCreateClient(store, nil)

	ana, err := create.Execute(ctx, domain.Fields{Name: "  Ana Silva ", Phone: ptr(" "), City: ptr("Campinas")})
	require.NoError(t, err)
	require.Equal(t, "Ana Silva", ana.Name)
	require.Nil(t, ana.Phone)
	require.Equal(t, ana.CreatedAt, ana.UpdatedAt)

	list := NewListClients(store)

	got, err := list.Execute(ctx, "ana")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, ana.ID, got[0].ID)

	got, err = list.Execute(ctx, "zzz")
	require.NoError(t, err)
	require.Empty(t, got)

	one, err := NewGetClient(store).Execute(ctx, ana.ID)
	require.NoError(t, err)
	require.Equal(t, "Campinas", *one.City)
}

func TestCreate_Validation(t *testing.T) {
	_, err := NewCreateClient(memstore.New(), nil).Execute(context.Background(), domain.Fields{Name: "A", Email: ptr("nope")})

	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	require.Equal(t, httperr.KindValidation, be.Kind)
	require.Contains(t, be.Fields, "name")
	require.Contains(t, be.Fields, "email")
}

func TestUpdate_EmptyPatchRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	create := NewCreateClient(store, nil)
	created := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	create.now = func() time.Time { return created }

	c, err := create.Execute(ctx, domain.Fields{Name: "Ana", Phone: ptr("1199")})
	require.NoError(t, err)

	update := NewUpdateClient(store, nil)
	later := created.Add(time.Hour)
	update.now = func() time.Time { return later }

	got, err := update.Execute(ctx, c.ID, domain.Patch{})
	require.NoError(t, err)
	require.Equal(t, later, got.UpdatedAt)
	require.Equal(t, "Ana", got.Name)
	require.Equal(t, "1199", *got.Phone)

	got, err = update.Execute(ctx, c.ID, domain.Patch{Name: optional.Of(" Ana Paula "), Phone: optional.Null[string]()})
	require.NoError(t, err)
	require.Equal(t, "Ana Paula", got.Name)
	require.Equal(t, "1199", *got.Phone)

	stored, err := store.GetClient(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, created, stored.CreatedAt)
	require.Equal(t, "Ana Paula", stored.Name)
}

func TestUpdate_NotFound(t *testing.T) {
	_, err := NewUpdateClient(memstore.New(), nil).Execute(context.Background(), "missing", domain.Patch{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_GuardedByServices(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	c, err := NewCreateClient(store, nil).Execute(ctx, domain.Fields{Name: "Ana"})
	require.NoError(t, err)
	require.NoError(t, store.CreateService(ctx, &models.Service{ID: "s1", ClientID: c.ID, Date: "2026-01-01"}))

	del := NewDeleteClient(store, store, nil)

	err = del.Execute(ctx, c.ID)
	require.ErrorIs(t, err, domain.ErrHasServices)
	require.Equal(t, httperr.KindConflict, httperr.KindOf(err))

	require.NoError(t, store.DeleteService(ctx, "s1"))
	require.NoError(t, del.Execute(ctx, c.ID))

	_, err = NewGetClient(store).Execute(ctx, c.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, del.Execute(ctx, c.ID), domain.ErrNotFound)
}
