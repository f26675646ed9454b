package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/pest-control-api/internal/audit"
	"github.com/BruksfildServices01/pest-control-api/internal/config"
	"github.com/BruksfildServices01/pest-control-api/internal/infra/memstore"
	"github.com/BruksfildServices01/pest-control-api/internal/throttle"
)

type testAPI struct {
	t      *testing.T
	router *gin.Engine
	audit  *audit.Dispatcher
	token  string
}

func newTestAPI(t *testing.T, limiter throttle.Limiter) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auditLog := audit.New(store)
	dispatcher := audit.NewDispatcher(auditLog, logger)

	sp := time.FixedZone("BRT", -3*3600)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, sp)

	r := gin.New()
	require.NoError(t, r.SetTrustedProxies(nil))
	RegisterRoutes(r, Deps{
		Config: &config.Config{
			JWTSecret:   "test-secret",
			JWTTTL:      time.Hour,
			BcryptCost:  bcrypt.MinCost,
			CORSOrigins: []string{"*"},
			Timezone:    "America/Sao_Paulo",
		},
		Logger:   logger,
		Version:  "test",
		Users:    store,
		Clients:  store,
		Services: store,
		AuditLog: auditLog,
		Audit:    dispatcher,
		Limiter:  limiter,
		Clock:    func() time.Time { return now },
	})

	return &testAPI{t: t, router: r, audit: dispatcher}
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	return a.doFrom("192.0.2.1:1234", nil, method, path, body)
}

// doFrom sends the request from remoteAddr with extra headers.
func (a *testAPI) doFrom(remoteAddr string, headers map[string]string, method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = remoteAddr
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (a *testAPI) login(username, password string) {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/login", map[string]string{"username": username, "password": password})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	a.token = decode[map[string]string](a.t, w)["access_token"]
}

func TestHealthAndBanner(t *testing.T) {
	api := newTestAPI(t, nil)

	w := api.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok","ok":true}`, w.Body.String())

	w = api.do(http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok","ok":true}`, w.Body.String())

	w = api.do(http.MethodGet, "/api/", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthFlow(t *testing.T) {
	api := newTestAPI(t, nil)

	w := api.do(http.MethodGet, "/api/auth/bootstrap/status", nil)
	require.JSONEq(t, `{"has_user":false}`, w.Body.String())

	w = api.do(http.MethodPost, "/api/auth/register", map[string]string{"name": "Ana", "username": "Ana", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	user := decode[map[string]any](t, w)
	require.Equal(t, "ana", user["username"])
	require.NotContains(t, user, "password_hash")

	w = api.do(http.MethodPost, "/api/auth/register", map[string]string{"name": "Ana 2", "username": " ANA ", "password": "secret2"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "username_taken", decode[map[string]any](t, w)["error_code"])

	w = api.do(http.MethodGet, "/api/auth/bootstrap/status", nil)
	require.JSONEq(t, `{"has_user":true}`, w.Body.String())

	w = api.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "ana", "password": "nope"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "invalid_credentials", decode[map[string]any](t, w)["error_code"])

	w = api.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	api.login("ana", "secret1")
	w = api.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "ana", "password": "secret1"})
	require.Equal(t, "bearer", decode[map[string]string](t, w)["token_type"])

	w = api.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[map[string]any](t, w)
	require.Equal(t, user["id"], me["id"])

	w = api.do(http.MethodPost, "/api/auth/login", "not an object")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientsServicesAndDashboard(t *testing.T) {
	api := newTestAPI(t, nil)
	api.do(http.MethodPost, "/api/auth/register", map[string]string{"name": "Ana", "username": "owner", "password": "secret1"})
	api.login("owner", "secret1")

	// ---- clients
	w := api.do(http.MethodPost, "/api/clients", map[string]any{"name": "Ana Silva", "phone": "11 99999-0000"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	clientID := decode[map[string]any](t, w)["id"].(string)

	w = api.do(http.MethodPost, "/api/clients", map[string]any{"name": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decode[map[string]any](t, w)["fields"], "name")

	w = api.do(http.MethodGet, "/api/clients?q=ana", nil)
	require.Len(t, decode[[]map[string]any](t, w), 1)

	w = api.do(http.MethodGet, "/api/clients?q=zzz", nil)
	require.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	w = api.do(http.MethodPut, "/api/clients/"+clientID, map[string]any{"city": "Campinas", "name": nil})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[map[string]any](t, w)
	require.Equal(t, "Ana Silva", updated["name"])
	require.Equal(t, "Campinas", updated["city"])

	w = api.do(http.MethodPut, "/api/clients/"+clientID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/api/clients/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "client_not_found", decode[map[string]any](t, w)["error_code"])

	// ---- services
	w = api.do(http.MethodPost, "/api/services", map[string]any{"client_id": "ghost", "date": "2026-10-20", "service_type": "Cupim"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "invalid_client_reference", decode[map[string]any](t, w)["error_code"])

	w = api.do(http.MethodPost, "/api/services", map[string]any{"client_id": clientID, "date": "20/10/2026", "service_type": "Cupim", "value": 150})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	svc := decode[map[string]any](t, w)
	require.Equal(t, "PENDING", svc["status"])
	require.Equal(t, "2026-10-20", svc["date"])
	serviceID := svc["id"].(string)

	w = api.do(http.MethodPost, "/api/services", map[string]any{"client_id": clientID, "date": "2026-11-05", "service_type": "Ratos", "value": 999, "status": "COMPLETED"})
	require.Equal(t, http.StatusOK, w.Code)
	nextMonthID := decode[map[string]any](t, w)["id"].(string)

	w = api.do(http.MethodGet, "/api/services?from=2026-10-01&to=2026-10-31", nil)
	require.Len(t, decode[[]map[string]any](t, w), 1)

	w = api.do(http.MethodGet, "/api/services?status=bogus", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// ---- dashboard
	w = api.do(http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"month":"2026-10","clients_total":1,"services_month":1,"pending_month":1,"revenue_month":0}`, w.Body.String())

	w = api.do(http.MethodPut, "/api/services/"+serviceID, map[string]any{"status": "COMPLETED"})
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/api/dashboard/summary", nil)
	require.JSONEq(t, `{"month":"2026-10","clients_total":1,"services_month":1,"pending_month":0,"revenue_month":150}`, w.Body.String())

	w = api.do(http.MethodGet, "/api/dashboard/insights", nil)
	require.Equal(t, http.StatusOK, w.Code)
	insights := decode[map[string]any](t, w)
	require.Equal(t, "2026-11", insights["best_month"])
	require.EqualValues(t, 2, insights["total_services"])

	// ---- agenda and exports
	w = api.do(http.MethodGet, "/api/services/agenda?days=7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	agenda := decode[map[string]any](t, w)
	require.Equal(t, "2026-10-19", agenda["from"])
	require.Len(t, agenda["days"], 1)

	w = api.do(http.MethodGet, "/api/services/agenda?days=abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/exports/services.csv", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.HasPrefix(w.Body.String(), "id,date,client_id,client_name"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "services-20261019.csv")

	w = api.do(http.MethodPost, "/api/exports/services", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	// ---- referential guard
	w = api.do(http.MethodDelete, "/api/clients/"+clientID, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "client_has_services", decode[map[string]any](t, w)["error_code"])

	for _, id := range []string{serviceID, nextMonthID} {
		w = api.do(http.MethodDelete, "/api/services/"+id, nil)
		require.JSONEq(t, `{"ok":true}`, w.Body.String())
	}

	w = api.do(http.MethodDelete, "/api/clients/"+clientID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = api.do(http.MethodGet, "/api/clients/"+clientID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// ---- audit trail
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, api.audit.Close(ctx))

	w = api.do(http.MethodGet, "/api/audit-logs?entity=client", nil)
	require.Equal(t, http.StatusOK, w.Code)
	logs := decode[map[string]any](t, w)["logs"].([]any)
	require.Len(t, logs, 4)
	require.Equal(t, audit.ActionClientDeleted, logs[0].(map[string]any)["action"])
}

func TestLoginThrottle(t *testing.T) {
	api := newTestAPI(t, throttle.NewMemoryLimiter(throttle.Config{Requests: 2, Window: time.Minute}))

	for i := 0; i < 2; i++ {
		w := api.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "x", "password": "y"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := api.do(http.MethodPost, "/api/auth/login", map[string]string{"username": "x", "password": "y"})
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestLoginThrottle_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	api := newTestAPI(t, throttle.NewMemoryLimiter(throttle.Config{Requests: 2, Window: time.Minute}))
	creds := map[string]string{"username": "x", "password": "y"}

	var codes []int
	for i := 1; i <= 4; i++ {
		headers := map[string]string{"X-Forwarded-For": fmt.Sprintf("10.0.0.%d", i)}
		w := api.doFrom("203.0.113.9:4321", headers, http.MethodPost, "/api/auth/login", creds)
		codes = append(codes, w.Code)
	}

	require.Equal(t, []int{
		http.StatusUnauthorized,
		http.StatusUnauthorized,
		http.StatusTooManyRequests,
		http.StatusTooManyRequests,
	}, codes)

	w := api.doFrom("198.51.100.7:4321", nil, http.MethodPost, "/api/auth/login", creds)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegister_AcceptsEmailUsername(t *testing.T) {
	api := newTestAPI(t, nil)

	w := api.do(http.MethodPost, "/api/auth/register", map[string]string{"name": "Ana", "username": "Ana@Empresa.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "ana@empresa.com", decode[map[string]any](t, w)["username"])

	api.login("ana@empresa.com", "secret1")
}
