package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pest-control-api/internal/auth"
	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
	"github.com/BruksfildServices01/pest-control-api/internal/logging"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

const (
	ContextUserID = "userID"
	ContextUser   = "user"
)

var (
	errMissingHeader = httperr.Unauthenticated("missing_authorization_header", "Token de acesso não informado.")
	errInvalidHeader = httperr.Unauthenticated("invalid_authorization_header", "Use o formato: Bearer <token>.")
)

// UserLoader resolves a token subject to the stored account.
type UserLoader interface {
	Execute(ctx context.Context, id string) (*models.User, error)
}

// AuthMiddleware resolves the bearer token and loads its user on every
// request. Deleted users are rejected even while their token is valid.
func AuthMiddleware(tokens *auth.TokenService, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, errMissingHeader)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Abort(c, errInvalidHeader)
			return
		}

		ident, err := tokens.Resolve(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		ctx := c.Request.Context()
		user, err := users.Execute(ctx, ident.UserID)
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		ctx = auth.WithIdentity(ctx, ident)
		ctx = logging.WithContext(ctx, logging.FromContext(ctx).With("user_id", user.ID))
		c.Request = c.Request.WithContext(ctx)

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUser, user)

		c.Next()
	}
}

// CurrentUser returns the user loaded by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}
