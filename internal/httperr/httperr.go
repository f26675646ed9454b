package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pest-control-api/internal/logging"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

// StatusFor maps an error kind to the HTTP status returned to the caller.
func StatusFor(kind Kind) int {
	switch kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindInvalidReference, KindValidation:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as JSON. Business errors keep their code and message;
// anything else is logged and hidden behind a generic 500.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		c.JSON(StatusFor(be.Kind), HTTPError{
			Code:    be.Code,
			Message: be.Message,
			Fields:  be.Fields,
		})
		return
	}

	logging.FromContext(c.Request.Context()).Error("request failed",
		slog.String("route", c.FullPath()),
		slog.Any("error", err),
	)
	Internal(c, "internal_error", "Erro interno. Tente novamente.")
}

// Abort is Respond for middleware: it also stops the handler chain.
func Abort(c *gin.Context, err error) {
	Respond(c, err)
	c.Abort()
}
