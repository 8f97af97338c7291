package service

import (
	"context"
	"strings"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/repository"
)

// OrganizationService определяет интерфейс бизнес-логики для организаций
type OrganizationService interface {
	GetAll(ctx context.Context) ([]domain.Organization, error)
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	Create(ctx context.Context, req *dto.OrganizationRequest) (*domain.Organization, error)
	Update(ctx context.Context, id int64, req *dto.OrganizationRequest) (*domain.Organization, error)
	Delete(ctx context.Context, id int64) error
}

type organizationService struct {
	orgRepo    repository.OrganizationRepository
	regionRepo repository.RegionRepository
}

// NewOrganizationService создаёт новый экземпляр сервиса
func NewOrganizationService(orgRepo repository.OrganizationRepository, regionRepo repository.RegionRepository) OrganizationService {
	return &organizationService{
		orgRepo:    orgRepo,
		regionRepo: regionRepo,
	}
}

func (s *organizationService) GetAll(ctx context.Context) ([]domain.Organization, error) {
	return s.orgRepo.GetAll(ctx)
}

func (s *organizationService) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	return s.orgRepo.GetByID(ctx, id)
}

func (s *organizationService) Create(ctx context.Context, req *dto.OrganizationRequest) (*domain.Organization, error) {
	name := strings.TrimSpace(req.Name)

	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	// Проверяем уникальность имени по всем организациям
	exists, err := s.orgRepo.ExistsByName(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateOrganizationName
	}

	org := &domain.Organization{
		Name:     name,
		RegionID: req.RegionID,
		ParentID: req.ParentID,
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

func (s *organizationService) Update(ctx context.Context, id int64, req *dto.OrganizationRequest) (*domain.Organization, error) {
	org, err := s.orgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)

	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	exists, err := s.orgRepo.ExistsByName(ctx, name, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateOrganizationName
	}

	if req.ParentID != nil {
		newParentID := *req.ParentID

		// Организация не может быть родителем самой себя
		if newParentID == id {
			return nil, domain.ErrSelfReference
		}

		// Перенос в собственного потомка создал бы цикл
		isDescendant, err := s.orgRepo.IsDescendant(ctx, id, newParentID)
		if err != nil {
			return nil, err
		}
		if isDescendant {
			return nil, domain.ErrCyclicReference
		}
	}

	// Переносим изменяемые поля из payload, id сохраняется
	org.Name = name
	org.RegionID = req.RegionID
	org.ParentID = req.ParentID

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

func (s *organizationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.orgRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.orgRepo.Delete(ctx, id)
}

// checkReferences проверяет существование региона и родительской организации
func (s *organizationService) checkReferences(ctx context.Context, req *dto.OrganizationRequest) error {
	if req.RegionID != nil {
		if _, err := s.regionRepo.GetByID(ctx, *req.RegionID); err != nil {
			return err
		}
	}

	if req.ParentID != nil {
		if _, err := s.orgRepo.GetByID(ctx, *req.ParentID); err != nil {
			return err
		}
	}

	return nil
}
