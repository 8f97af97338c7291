package repository

import (
	"context"

	"github.com/hr-payroll-api/internal/domain"
	"gorm.io/gorm"
)

// RegionRepository определяет интерфейс для работы с регионами
type RegionRepository interface {
	GetAll(ctx context.Context) ([]domain.Region, error)
	GetByID(ctx context.Context, id int64) (*domain.Region, error)
	Create(ctx context.Context, region *domain.Region) error
	Update(ctx context.Context, region *domain.Region) error
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
}

type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository создаёт новый экземпляр репозитория
func NewRegionRepository(db *gorm.DB) RegionRepository {
	return &regionRepository{db: db}
}

func (r *regionRepository) GetAll(ctx context.Context) ([]domain.Region, error) {
	var regions []domain.Region
	err := r.db.WithContext(ctx).Order("id ASC").Find(&regions).Error
	return regions, err
}

func (r *regionRepository) GetByID(ctx context.Context, id int64) (*domain.Region, error) {
	var region domain.Region
	err := r.db.WithContext(ctx).First(&region, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrRegionNotFound
		}
		return nil, err
	}
	return &region, nil
}

func (r *regionRepository) Create(ctx context.Context, region *domain.Region) error {
	return r.db.WithContext(ctx).Create(region).Error
}

func (r *regionRepository) Update(ctx context.Context, region *domain.Region) error {
	return r.db.WithContext(ctx).Save(region).Error
}

func (r *regionRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Region{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRegionNotFound
	}
	return nil
}

func (r *regionRepository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Region{}).Where("name = ?", name)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	err := query.Count(&count).Error
	return count > 0, err
}
