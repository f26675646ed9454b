package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/pest-control-api/internal/config"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

// extraIndexes are created after AutoMigrate. Failures are logged and the
// server starts anyway.
var extraIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_services_client_date ON services (client_id, service_date)`,
	`CREATE INDEX IF NOT EXISTS idx_services_status_date ON services (status, service_date)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_name_lower ON clients (LOWER(name))`,
}

func NewDB(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.Env == "dev" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.AuditLog{},
	); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	for _, stmt := range extraIndexes {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			log.Warn("index creation failed", slog.String("stmt", stmt), slog.Any("error", err))
		}
	}

	return db, nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
