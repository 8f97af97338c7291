package service

import (
	"context"
	"strings"
	"time"

	"github.com/hr-payroll-api/internal/domain"
	"github.com/hr-payroll-api/internal/dto"
	"github.com/hr-payroll-api/internal/repository"
)

// CalculationService определяет интерфейс бизнес-логики для начислений
// и отчётов по ним
type CalculationService interface {
	GetAll(ctx context.Context) ([]domain.CalculationRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.CalculationRecord, error)
	Create(ctx context.Context, req *dto.CalculationRequest) (*domain.CalculationRecord, error)
	Update(ctx context.Context, id int64, req *dto.CalculationRequest) (*domain.CalculationRecord, error)
	Delete(ctx context.Context, id int64) error

	HighSalaries(ctx context.Context, month int, threshold float64) ([]domain.HighSalaryRow, error)
	OrganizationSummaries(ctx context.Context, month int) ([]domain.OrganizationSummaryRow, error)
	AverageSalaryByOrganization(ctx context.Context, month int, organizationID int64) ([]domain.AverageSalaryRow, error)
	SalariesAndVacations(ctx context.Context, month int) ([]domain.SalaryVacationRow, error)
}

type calculationService struct {
	calcRepo repository.CalculationRepository
	empRepo  repository.EmployeeRepository
	orgRepo  repository.OrganizationRepository
}

// NewCalculationService создаёт новый экземпляр сервиса
func NewCalculationService(
	calcRepo repository.CalculationRepository,
	empRepo repository.EmployeeRepository,
	orgRepo repository.OrganizationRepository,
) CalculationService {
	return &calculationService{
		calcRepo: calcRepo,
		empRepo:  empRepo,
		orgRepo:  orgRepo,
	}
}

func (s *calculationService) GetAll(ctx context.Context) ([]domain.CalculationRecord, error) {
	return s.calcRepo.GetAll(ctx)
}

func (s *calculationService) GetByID(ctx context.Context, id int64) (*domain.CalculationRecord, error) {
	return s.calcRepo.GetByID(ctx, id)
}

func (s *calculationService) Create(ctx context.Context, req *dto.CalculationRequest) (*domain.CalculationRecord, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	calc := &domain.CalculationRecord{
		EmployeeID:      req.EmployeeID,
		Amount:          req.Amount,
		Rate:            req.Rate,
		Date:            date,
		OrganizationID:  req.OrganizationID,
		CalculationType: strings.ToUpper(strings.TrimSpace(req.CalculationType)),
	}

	if err := s.calcRepo.Create(ctx, calc); err != nil {
		return nil, err
	}

	return calc, nil
}

func (s *calculationService) Update(ctx context.Context, id int64, req *dto.CalculationRequest) (*domain.CalculationRecord, error) {
	calc, err := s.calcRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	// Переносим изменяемые поля из payload, id сохраняется
	calc.Amount = req.Amount
	calc.Rate = req.Rate
	calc.Date = date
	calc.EmployeeID = req.EmployeeID
	calc.OrganizationID = req.OrganizationID
	calc.CalculationType = strings.ToUpper(strings.TrimSpace(req.CalculationType))

	if err := s.calcRepo.Update(ctx, calc); err != nil {
		return nil, err
	}

	return calc, nil
}

func (s *calculationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.calcRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.calcRepo.Delete(ctx, id)
}

// validate проверяет инварианты начисления: положительная сумма и
// существующий сотрудник. Сумма проверяется у входящей записи, а не
// глобальным сканом хранилища.
func (s *calculationService) validate(ctx context.Context, req *dto.CalculationRequest) error {
	if req.Amount <= 0 {
		return domain.ErrNonPositiveAmount
	}

	exists, err := s.empRepo.ExistsByID(ctx, req.EmployeeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrEmployeeRequired
	}

	if req.OrganizationID != nil {
		if _, err := s.orgRepo.GetByID(ctx, *req.OrganizationID); err != nil {
			return err
		}
	}

	return nil
}

// Отчётные операции: параметры пробрасываются в хранилище как есть,
// месяц вне 1-12 просто не находит строк.

func (s *calculationService) HighSalaries(ctx context.Context, month int, threshold float64) ([]domain.HighSalaryRow, error) {
	return s.calcRepo.HighSalaries(ctx, month, threshold)
}

func (s *calculationService) OrganizationSummaries(ctx context.Context, month int) ([]domain.OrganizationSummaryRow, error) {
	return s.calcRepo.OrganizationSummaries(ctx, month)
}

func (s *calculationService) AverageSalaryByOrganization(ctx context.Context, month int, organizationID int64) ([]domain.AverageSalaryRow, error) {
	return s.calcRepo.AverageSalaryByOrganization(ctx, month, organizationID)
}

func (s *calculationService) SalariesAndVacations(ctx context.Context, month int) ([]domain.SalaryVacationRow, error) {
	return s.calcRepo.SalariesAndVacations(ctx, month)
}
