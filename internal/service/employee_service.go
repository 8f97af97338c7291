package service

import (
	"context"
	"strings"
	"time"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	GetAll(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	empRepo repository.EmployeeRepository
	orgRepo repository.OrganizationRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository, orgRepo repository.OrganizationRepository) EmployeeService {
	return &employeeService{
		empRepo: empRepo,
		orgRepo: orgRepo,
	}
}

func (s *employeeService) GetAll(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.GetAll(ctx)
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) Create(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error) {
	emp := &domain.Employee{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Pinfl:          strings.TrimSpace(req.Pinfl),
		OrganizationID: req.OrganizationID,
	}

	if err := s.validate(ctx, emp, nil); err != nil {
		return nil, err
	}

	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		return nil, err
	}
	emp.HireDate = hireDate

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*domain.Employee, error) {
	emp, err := s.empRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &domain.Employee{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Pinfl:          strings.TrimSpace(req.Pinfl),
		OrganizationID: req.OrganizationID,
	}

	if err := s.validate(ctx, details, &id); err != nil {
		return nil, err
	}

	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		return nil, err
	}

	// Переносим изменяемые поля из payload, id сохраняется
	emp.FirstName = details.FirstName
	emp.LastName = details.LastName
	emp.Pinfl = details.Pinfl
	emp.HireDate = hireDate
	emp.OrganizationID = details.OrganizationID

	if err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.empRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.empRepo.Delete(ctx, id)
}

// validate проверяет бизнес-инварианты сотрудника перед записью.
// Дубликат пары (имя, фамилия) отклоняется по всему хранилищу,
// без привязки к организации.
func (s *employeeService) validate(ctx context.Context, emp *domain.Employee, excludeID *int64) error {
	if _, err := s.orgRepo.GetByID(ctx, emp.OrganizationID); err != nil {
		return err
	}

	exists, err := s.empRepo.ExistsByFullName(ctx, emp.FirstName, emp.LastName, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateEmployeeName
	}

	exists, err = s.empRepo.ExistsByPinfl(ctx, emp.Pinfl, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicatePinfl
	}

	return nil
}

// parseDate разбирает дату формата 2006-01-02, nil остаётся nil
func parseDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
