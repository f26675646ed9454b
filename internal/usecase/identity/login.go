package identity

import (
	"context"

	"github.com/BruksfildServices01/pest-control-api/internal/auth"
	"github.com/BruksfildServices01/pest-control-api/internal/dto"
)

const TokenTypeBearer = "bearer"

type Login struct {
	authenticate *Authenticate
	tokens       *auth.TokenService
}

func NewLogin(authenticate *Authenticate, tokens *auth.TokenService) *Login {
	return &Login{
		authenticate: authenticate,
		tokens:       tokens,
	}
}

func (uc *Login) Execute(
	ctx context.Context,
	username string,
	password string,
) (dto.TokenResponse, error) {

	user, err := uc.authenticate.Execute(ctx, username, password)
	if err != nil {
		return dto.TokenResponse{}, err
	}

	token, err := uc.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return dto.TokenResponse{}, err
	}

	return dto.TokenResponse{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
	}, nil
}
