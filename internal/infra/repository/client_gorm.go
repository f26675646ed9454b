package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/client"
	"github.com/BruksfildServices01/pest-control-api/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*ClientGormRepository)(nil)

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *ClientGormRepository) ListClients(
	ctx context.Context,
	query string,
	limit int,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx).Model(&models.Client{})

	if query = strings.TrimSpace(query); query != "" {
		pattern := containsPattern(query)
		q = q.Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(COALESCE(phone, '')) LIKE ? ESCAPE '\'`,
			pattern, pattern,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (r *ClientGormRepository) GetClient(ctx context.Context, id string) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

func (r *ClientGormRepository) GetClientsByIDs(ctx context.Context, ids []string) ([]models.Client, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var clients []models.Client
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("get clients: %w", err)
	}
	return clients, nil
}

func (r *ClientGormRepository) ClientExists(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Count(&n).Error; err != nil {
		return false, fmt.Errorf("check client: %w", err)
	}
	return n > 0, nil
}

func (r *ClientGormRepository) CountClients(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *ClientGormRepository) CreateClient(ctx context.Context, c *models.Client) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *ClientGormRepository) SaveClient(ctx context.Context, c *models.Client) error {
	res := r.db.WithContext(ctx).
		Model(c).
		Select("*").
		Omit("id", "created_at").
		Updates(c)
	if res.Error != nil {
		return fmt.Errorf("update client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientGormRepository) DeleteClient(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Client{})
	if res.Error != nil {
		return fmt.Errorf("delete client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
