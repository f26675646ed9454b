package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/pest-control-api/internal/auth"
	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/identity"
	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/infra/memstore"
)

const testCost = bcrypt.MinCost

func TestBootstrapAndRegister(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	status := NewBootstrapStatus(store)
	hasUser, err := status.Execute(ctx)
	require.NoError(t, err)
	require.False(t, hasUser)

	register := NewRegister(store, nil, testCost)
	user, err := register.Execute(ctx, " Ana ", "  Ana.Silva ", "secret1")
	require.NoError(t, err)
	require.Equal(t, "ana.silva", user.Username)
	require.Equal(t, "Ana", user.Name)
	require.NotEmpty(t, user.ID)

	hasUser, err = status.Execute(ctx)
	require.NoError(t, err)
	require.True(t, hasUser)

	stored, err := store.FindUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotEqual(t, "secret1", stored.PasswordHash)
}

func TestRegister_DuplicateIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	register := NewRegister(memstore.New(), nil, testCost)

	_, err := register.Execute(ctx, "Ana", "ana", "secret1")
	require.NoError(t, err)

	_, err = register.Execute(ctx, "Outra Ana", "ANA", "secret2")
	require.ErrorIs(t, err, domain.ErrUsernameTaken)
	require.Equal(t, httperr.KindConflict, httperr.KindOf(err))
}

func TestRegister_Validation(t *testing.T) {
	register := NewRegister(memstore.New(), nil, testCost)

	_, err := register.Execute(context.Background(), "A", "ab", "123")

	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	require.Equal(t, httperr.KindValidation, be.Kind)
	require.Contains(t, be.Fields, "name")
	require.Contains(t, be.Fields, "username")
	require.Contains(t, be.Fields, "password")
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	_, err := NewRegister(store, nil, testCost).Execute(ctx, "Ana", "ana", "secret1")
	require.NoError(t, err)

	authn := NewAuthenticate(store, testCost)

	user, err := authn.Execute(ctx, " ANA", "secret1")
	require.NoError(t, err)
	require.Equal(t, "ana", user.Username)

	_, err = authn.Execute(ctx, "ana", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = authn.Execute(ctx, "nobody", "secret1")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_TokenResolvesToSameUser(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	registered, err := NewRegister(store, nil, testCost).Execute(ctx, "Ana", "ana", "secret1")
	require.NoError(t, err)

	tokens := auth.NewTokenService("test-secret", time.Hour)
	login := NewLogin(NewAuthenticate(store, testCost), tokens)

	resp, err := login.Execute(ctx, "ana", "secret1")
	require.NoError(t, err)
	require.Equal(t, TokenTypeBearer, resp.TokenType)

	ident, err := tokens.Resolve(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, registered.ID, ident.UserID)

	user, err := NewGetUser(store).Execute(ctx, ident.UserID)
	require.NoError(t, err)
	require.Equal(t, "ana", user.Username)
}

func TestGetUser_UnknownSubjectIsUnauthenticated(t *testing.T) {
	_, err := NewGetUser(memstore.New()).Execute(context.Background(), "gone")

	require.ErrorIs(t, err, domain.ErrUnknownSubject)
	require.Equal(t, httperr.KindUnauthenticated, httperr.KindOf(err))
}
