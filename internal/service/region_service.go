package service

import (
	"context"
	"strings"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/repository"
)

// RegionService определяет интерфейс бизнес-логики для регионов
type RegionService interface {
	GetAll(ctx context.Context) ([]domain.Region, error)
	GetByID(ctx context.Context, id int64) (*domain.Region, error)
	Create(ctx context.Context, req *dto.RegionRequest) (*domain.Region, error)
	Update(ctx context.Context, id int64, req *dto.RegionRequest) (*domain.Region, error)
	Delete(ctx context.Context, id int64) error
}

type regionService struct {
	regionRepo repository.RegionRepository
}

// NewRegionService создаёт новый экземпляр сервиса
func NewRegionService(regionRepo repository.RegionRepository) RegionService {
	return &regionService{regionRepo: regionRepo}
}

func (s *regionService) GetAll(ctx context.Context) ([]domain.Region, error) {
	return s.regionRepo.GetAll(ctx)
}

func (s *regionService) GetByID(ctx context.Context, id int64) (*domain.Region, error) {
	return s.regionRepo.GetByID(ctx, id)
}

func (s *regionService) Create(ctx context.Context, req *dto.RegionRequest) (*domain.Region, error) {
	name := strings.TrimSpace(req.Name)

	// Проверяем уникальность имени по всем регионам
	exists, err := s.regionRepo.ExistsByName(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateRegionName
	}

	region := &domain.Region{Name: name}

	if err := s.regionRepo.Create(ctx, region); err != nil {
		return nil, err
	}

	return region, nil
}

func (s *regionService) Update(ctx context.Context, id int64, req *dto.RegionRequest) (*domain.Region, error) {
	region, err := s.regionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)

	exists, err := s.regionRepo.ExistsByName(ctx, name, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateRegionName
	}

	// Из payload переносится только имя, id сохраняется
	region.Name = name

	if err := s.regionRepo.Update(ctx, region); err != nil {
		return nil, err
	}

	return region, nil
}

func (s *regionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.regionRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.regionRepo.Delete(ctx, id)
}
