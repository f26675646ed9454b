package handlers

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pest-control-api/internal/httperr"
)

var errInvalidBody = httperr.Validation("invalid_request", "Corpo da requisição inválido.", nil)

// bindJSON writes a 400 and returns false when the body is not valid JSON
// for dst.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.Respond(c, errInvalidBody)
		return false
	}
	return true
}

// bindPatch is bindJSON for updates, where an empty body is an empty patch.
func bindPatch(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		httperr.Respond(c, errInvalidBody)
		return false
	}
	return true
}

// queryInt returns def for a missing parameter and a validation error for a
// malformed one.
func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, httperr.Validation("validation_failed", "Dados inválidos.", map[string]string{
			name: "deve ser um número inteiro",
		})
	}
	return n, nil
}
