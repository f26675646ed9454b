package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusFor(t *testing.T) {
	cases := map[Kind]int{
		KindUnauthenticated:  http.StatusUnauthorized,
		KindNotFound:         http.StatusNotFound,
		KindConflict:         http.StatusBadRequest,
		KindInvalidReference: http.StatusBadRequest,
		KindValidation:       http.StatusBadRequest,
		KindUnavailable:      http.StatusServiceUnavailable,
		KindUnknown:          http.StatusInternalServerError,
	}
	for kind, want := range cases {
		require.Equal(t, want, StatusFor(kind), kind.String())
	}
}

func TestBusinessError_IsIgnoresFields(t *testing.T) {
	sentinel := Validation("validation_failed", "x", nil)
	withFields := Validation("validation_failed", "y", map[string]string{"name": "bad"})

	require.ErrorIs(t, fmt.Errorf("wrap: %w", withFields), sentinel)
	require.NotErrorIs(t, withFields, NotFoundErr("validation_failed", "x"))
}

func TestFieldErrors_KeepsFirstProblem(t *testing.T) {
	f := FieldErrors{}
	require.NoError(t, f.Err())

	f.Add("name", "first")
	f.Add("name", "second")

	var be BusinessError
	require.True(t, errors.As(f.Err(), &be))
	require.Equal(t, KindValidation, be.Kind)
	require.Equal(t, "first", be.Fields["name"])
}

func respond(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Respond(c, err)
	return w
}

func TestRespond_BusinessError(t *testing.T) {
	w := respond(NotFoundErr("client_not_found", "Cliente não encontrado."))
	require.Equal(t, http.StatusNotFound, w.Code)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "client_not_found", body.Code)
	require.Nil(t, body.Fields)
}

func TestRespond_HidesUnexpectedErrors(t *testing.T) {
	w := respond(errors.New("pq: connection refused"))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "connection refused")
	require.Contains(t, w.Body.String(), "internal_error")
}
