package identity

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/pest-control-api/internal/auth"
	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
	"github.com/BruksfildServices01/pest-control-api/internal/validators"
)

var (
	ErrUserNotFound       = httperr.NotFoundErr("user_not_found", "Usuário não encontrado.")
	ErrUsernameTaken      = httperr.Conflict("username_taken", "Nome de usuário já cadastrado.")
	ErrInvalidCredentials = httperr.Unauthenticated("invalid_credentials", "Usuário ou senha inválidos.")
	ErrUnknownSubject     = httperr.Unauthenticated("user_not_found", "Usuário do token não existe mais.")
)

const (
	MinPasswordLength = 6

	MinUsernameLength = 3
	MaxUsernameLength = 60
)

type Repository interface {
	CountUsers(ctx context.Context) (int64, error)

	// CreateUser returns ErrUsernameTaken when the unique index rejects the row.
	CreateUser(ctx context.Context, u *models.User) error

	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
}

// NormalizeUsername trims and lowercases, making usernames case-insensitive.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateRegistration expects an already normalized username.
func ValidateRegistration(name, username, password string) error {
	fields := httperr.FieldErrors{}

	if !validators.LengthBetween(strings.TrimSpace(name), 2, 120) {
		fields.Add("name", "deve ter entre 2 e 120 caracteres")
	}
	if !validators.LengthBetween(username, MinUsernameLength, MaxUsernameLength) {
		fields.Add("username", "deve ter entre 3 e 60 caracteres")
	}
	if len(password) < MinPasswordLength {
		fields.Add("password", "deve ter pelo menos 6 caracteres")
	}
	if len(password) > auth.MaxPasswordBytes {
		fields.Add("password", "deve ter no máximo 72 bytes")
	}

	return fields.Err()
}
