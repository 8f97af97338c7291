package repository

import (
	"context"

	"github.com/hr-payroll-api/internal/domain"
	"gorm.io/gorm"
)

// OrganizationRepository определяет интерфейс для работы с организациями
type OrganizationRepository interface {
	GetAll(ctx context.Context) ([]domain.Organization, error)
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	Create(ctx context.Context, org *domain.Organization) error
	Update(ctx context.Context, org *domain.Organization) error
	Delete(ctx context.Context, id int64) error
	ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error)
	IsDescendant(ctx context.Context, ancestorID, descendantID int64) (bool, error)
}

type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository создаёт новый экземпляр репозитория
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) GetAll(ctx context.Context) ([]domain.Organization, error) {
	var orgs []domain.Organization
	err := r.db.WithContext(ctx).Order("id ASC").Find(&orgs).Error
	return orgs, err
}

func (r *organizationRepository) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	var org domain.Organization
	err := r.db.WithContext(ctx).First(&org, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *organizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

func (r *organizationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Organization{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}

func (r *organizationRepository) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&domain.Organization{}).Where("name = ?", name)

	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	err := query.Count(&count).Error
	return count > 0, err
}

func (r *organizationRepository) IsDescendant(ctx context.Context, ancestorID, descendantID int64) (bool, error) {
	descendants, err := r.descendantIDs(ctx, ancestorID)
	if err != nil {
		return false, err
	}

	for _, id := range descendants {
		if id == descendantID {
			return true, nil
		}
	}
	return false, nil
}

// descendantIDs возвращает id всех организаций в поддереве заданной
// (рекурсивный CTE, без самой вершины)
func (r *organizationRepository) descendantIDs(ctx context.Context, id int64) ([]int64, error) {
	var result []int64

	query := `
		WITH RECURSIVE descendants AS (
			SELECT id FROM organization WHERE parent_id = ?
			UNION ALL
			SELECT o.id FROM organization o
			INNER JOIN descendants ds ON o.parent_id = ds.id
		)
		SELECT id FROM descendants
	`

	rows, err := r.db.WithContext(ctx).Raw(query, id).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var descendantID int64
		if err := rows.Scan(&descendantID); err != nil {
			return nil, err
		}
		result = append(result, descendantID)
	}

	return result, rows.Err()
}
