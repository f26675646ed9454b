package routes

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pest-control-api/internal/audit"
	"github.com/BruksfildServices01/pest-control-api/internal/auth"
	"github.com/BruksfildServices01/pest-control-api/internal/config"
	"github.com/BruksfildServices01/pest-control-api/internal/domain/client"
	"github.com/BruksfildServices01/pest-control-api/internal/domain/identity"
	"github.com/BruksfildServices01/pest-control-api/internal/domain/service"
	"github.com/BruksfildServices01/pest-control-api/internal/handlers"
	"github.com/BruksfildServices01/pest-control-api/internal/logging"
	"github.com/BruksfildServices01/pest-control-api/internal/middleware"
	"github.com/BruksfildServices01/pest-control-api/internal/throttle"
	"github.com/BruksfildServices01/pest-control-api/internal/timezone"
	ucClient "github.com/BruksfildServices01/pest-control-api/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/pest-control-api/internal/usecase/dashboard"
	ucIdentity "github.com/BruksfildServices01/pest-control-api/internal/usecase/identity"
	ucService "github.com/BruksfildServices01/pest-control-api/internal/usecase/service"
)

// ClientStore is what the client registry and the ledger's reference
// checks need from storage.
type ClientStore interface {
	client.Repository
	ucService.ClientLookup
}

type Deps struct {
	Config  *config.Config
	Logger  *slog.Logger
	Version string

	Users    identity.Repository
	Clients  ClientStore
	Services service.Repository

	AuditLog *audit.Logger
	Audit    *audit.Dispatcher

	// Limiter guards the credential endpoints; nil disables throttling.
	Limiter throttle.Limiter

	// Uploader archives exports; nil when object storage is not configured.
	Uploader ucService.ArchiveUploader

	// Clock is "now" in the business time zone. Defaults to APP_TIMEZONE.
	Clock func() time.Time
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	if d.Clock == nil {
		d.Clock = timezone.Clock(cfg.Timezone)
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(logging.RequestLogger(d.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	// ======================================================
	// USE CASES: IDENTITY
	// ======================================================
	authenticateUC := ucIdentity.NewAuthenticate(d.Users, cfg.BcryptCost)
	getUserUC := ucIdentity.NewGetUser(d.Users)

	authHandler := handlers.NewAuthHandler(
		ucIdentity.NewBootstrapStatus(d.Users),
		ucIdentity.NewRegister(d.Users, d.Audit, cfg.BcryptCost),
		ucIdentity.NewLogin(authenticateUC, tokens),
	)

	// ======================================================
	// USE CASES: CLIENTS
	// ======================================================
	clientHandler := handlers.NewClientHandler(
		ucClient.NewListClients(d.Clients),
		ucClient.NewCreateClient(d.Clients, d.Audit),
		ucClient.NewGetClient(d.Clients),
		ucClient.NewUpdateClient(d.Clients, d.Audit),
		ucClient.NewDeleteClient(d.Clients, d.Services, d.Audit),
	)

	// ======================================================
	// USE CASES: SERVICES
	// ======================================================
	serviceHandler := handlers.NewServiceHandler(
		ucService.NewListServices(d.Services),
		ucService.NewCreateService(d.Services, d.Clients, d.Audit),
		ucService.NewGetService(d.Services),
		ucService.NewUpdateService(d.Services, d.Clients, d.Audit),
		ucService.NewDeleteService(d.Services, d.Audit),
		ucService.NewAgenda(d.Services, d.Clients, d.Clock),
	)

	exportUC := ucService.NewExportServices(d.Services, d.Clients)
	exportHandler := handlers.NewExportHandler(
		exportUC,
		ucService.NewArchiveServices(exportUC, d.Uploader, d.Audit),
		d.Clock,
	)

	// ======================================================
	// USE CASES: DASHBOARD
	// ======================================================
	dashboardHandler := handlers.NewDashboardHandler(
		ucDashboard.NewGetSummary(d.Clients, d.Services, d.Clock),
		ucDashboard.NewGetInsights(d.Services),
	)

	meHandler := handlers.NewMeHandler()
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLog)

	// ======================================================
	// HEALTH
	// ======================================================
	r.GET("/health", handlers.Health)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/", handlers.Banner(d.Version))
		api.GET("/health", handlers.Health)

		// ------------------------------
		// AUTH
		// ------------------------------
		limit := throttle.Middleware(d.Limiter)

		api.GET("/auth/bootstrap/status", authHandler.BootstrapStatus)
		api.POST("/auth/register", limit, authHandler.Register)
		api.POST("/auth/login", limit, authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(tokens, getUserUC))
		{
			secured.GET("/auth/me", meHandler.GetMe)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/agenda", serviceHandler.Agenda)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/dashboard/summary", dashboardHandler.Summary)
			secured.GET("/dashboard/insights", dashboardHandler.Insights)

			secured.GET("/exports/services.csv", exportHandler.ServicesCSV)
			secured.POST("/exports/services", exportHandler.ArchiveServices)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
