package identity

import (
	"context"
	"errors"
	"sync"

	"github.com/BruksfildServices01/pest-control-api/internal/auth"
	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/identity"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

type Authenticate struct {
	repo       domain.Repository
	bcryptCost int

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthenticate(repo domain.Repository, bcryptCost int) *Authenticate {
	return &Authenticate{
		repo:       repo,
		bcryptCost: bcryptCost,
	}
}

// Execute fails with the same error for an unknown user and a wrong
// password. Unknown users still pay for one bcrypt comparison.
func (uc *Authenticate) Execute(
	ctx context.Context,
	username string,
	password string,
) (*models.User, error) {

	user, err := uc.repo.FindUserByUsername(ctx, domain.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			auth.VerifyPassword(password, uc.fakeHash())
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (uc *Authenticate) fakeHash() string {
	uc.dummyOnce.Do(func() {
		uc.dummyHash, _ = auth.HashPassword("not-a-real-password", uc.bcryptCost)
	})
	return uc.dummyHash
}
