package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/pest-control-api/internal/audit"
	"github.com/BruksfildServices01/pest-control-api/internal/auth"
	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/identity"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

type Register struct {
	repo       domain.Repository
	audit      *audit.Dispatcher
	bcryptCost int
	now        func() time.Time
}

func NewRegister(
	repo domain.Repository,
	audit *audit.Dispatcher,
	bcryptCost int,
) *Register {
	return &Register{
		repo:       repo,
		audit:      audit,
		bcryptCost: bcryptCost,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (uc *Register) Execute(
	ctx context.Context,
	name string,
	username string,
	password string,
) (models.PublicUser, error) {

	name = strings.TrimSpace(name)
	username = domain.NormalizeUsername(username)

	if err := domain.ValidateRegistration(name, username, password); err != nil {
		return models.PublicUser{}, err
	}

	// The unique index is authoritative; this only gives a fast answer.
	_, err := uc.repo.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		return models.PublicUser{}, domain.ErrUsernameTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return models.PublicUser{}, err
	}

	hash, err := auth.HashPassword(password, uc.bcryptCost)
	if err != nil {
		return models.PublicUser{}, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    uc.now(),
	}

	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return models.PublicUser{}, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   user.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   audit.EntityUser,
		EntityID: user.ID,
		Metadata: map[string]string{"username": user.Username},
	})

	return user.Public(), nil
}
