package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/pest-control-api/internal/domain/calendar"
	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/service"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*ServiceGormRepository)(nil)

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *ServiceGormRepository) ListServices(
	ctx context.Context,
	f domain.Filter,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Model(&models.Service{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status.String())
	}
	if !f.From.IsZero() {
		q = q.Where("service_date >= ?", f.From.String())
	}
	if !f.To.IsZero() {
		q = q.Where("service_date <= ?", f.To.String())
	}
	if f.ClientID != "" {
		q = q.Where("client_id = ?", f.ClientID)
	}

	limit := f.Limit
	if limit <= 0 || limit > domain.MaxListResults {
		limit = domain.MaxListResults
	}

	var services []models.Service
	if err := q.
		Order("service_date DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (r *ServiceGormRepository) ListServicesBetween(
	ctx context.Context,
	w calendar.Window,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("service_date >= ? AND service_date <= ?", w.From.String(), w.To.String()).
		Order("service_date ASC").
		Order("created_at ASC").
		Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services between: %w", err)
	}
	return services, nil
}

func (r *ServiceGormRepository) ListAllServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("service_date ASC").
		Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list all services: %w", err)
	}
	return services, nil
}

func (r *ServiceGormRepository) GetService(ctx context.Context, id string) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

func (r *ServiceGormRepository) CountServicesByClient(ctx context.Context, clientID string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("client_id = ?", clientID).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	return n, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *ServiceGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (r *ServiceGormRepository) SaveService(ctx context.Context, s *models.Service) error {
	res := r.db.WithContext(ctx).
		Model(s).
		Select("*").
		Omit("id", "created_at").
		Updates(s)
	if res.Error != nil {
		return fmt.Errorf("update service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ServiceGormRepository) DeleteService(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		return fmt.Errorf("delete service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
