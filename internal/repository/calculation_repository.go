package repository

import (
	"context"

	"github.com/hr-payroll-api/internal/domain"
	"gorm.io/gorm"
)

// CalculationRepository определяет интерфейс для работы с начислениями
// и отчётными запросами по ним
type CalculationRepository interface {
	GetAll(ctx context.Context) ([]domain.CalculationRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.CalculationRecord, error)
	Create(ctx context.Context, calc *domain.CalculationRecord) error
	Update(ctx context.Context, calc *domain.CalculationRecord) error
	Delete(ctx context.Context, id int64) error
	ExistsInvalidAmount(ctx context.Context) (bool, error)
	ExistsByEmployeeID(ctx context.Context, employeeID int64) (bool, error)

	HighSalaries(ctx context.Context, month int, threshold float64) ([]domain.HighSalaryRow, error)
	OrganizationSummaries(ctx context.Context, month int) ([]domain.OrganizationSummaryRow, error)
	AverageSalaryByOrganization(ctx context.Context, month int, organizationID int64) ([]domain.AverageSalaryRow, error)
	SalariesAndVacations(ctx context.Context, month int) ([]domain.SalaryVacationRow, error)
}

type calculationRepository struct {
	db *gorm.DB
}

// NewCalculationRepository создаёт новый экземпляр репозитория
func NewCalculationRepository(db *gorm.DB) CalculationRepository {
	return &calculationRepository{db: db}
}

func (r *calculationRepository) GetAll(ctx context.Context) ([]domain.CalculationRecord, error) {
	var calcs []domain.CalculationRecord
	err := r.db.WithContext(ctx).Order("id ASC").Find(&calcs).Error
	return calcs, err
}

func (r *calculationRepository) GetByID(ctx context.Context, id int64) (*domain.CalculationRecord, error) {
	var calc domain.CalculationRecord
	err := r.db.WithContext(ctx).First(&calc, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCalculationNotFound
		}
		return nil, err
	}
	return &calc, nil
}

func (r *calculationRepository) Create(ctx context.Context, calc *domain.CalculationRecord) error {
	return r.db.WithContext(ctx).Create(calc).Error
}

func (r *calculationRepository) Update(ctx context.Context, calc *domain.CalculationRecord) error {
	return r.db.WithContext(ctx).Save(calc).Error
}

func (r *calculationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.CalculationRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCalculationNotFound
	}
	return nil
}

// ExistsInvalidAmount сообщает, есть ли в таблице хотя бы одна запись
// с неположительной суммой
func (r *calculationRepository) ExistsInvalidAmount(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CalculationRecord{}).Where("amount <= 0").Count(&count).Error
	return count > 0, err
}

func (r *calculationRepository) ExistsByEmployeeID(ctx context.Context, employeeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CalculationRecord{}).
		Where("employee_id = ?", employeeID).Count(&count).Error
	return count > 0, err
}

// monthExpr возвращает выражение извлечения месяца из даты для текущего
// диалекта: боевая БД - PostgreSQL, тесты репозитория гоняются на SQLite
func (r *calculationRepository) monthExpr(column string) string {
	if r.db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%m', " + column + ") AS INTEGER)"
	}
	return "EXTRACT(MONTH FROM " + column + ")"
}

// HighSalaries группирует начисления месяца по pinfl и возвращает группы,
// чья сумма превышает порог
func (r *calculationRepository) HighSalaries(ctx context.Context, month int, threshold float64) ([]domain.HighSalaryRow, error) {
	query := `
		SELECT e.pinfl, SUM(c.amount) AS total_amount
		FROM calculation_table c
		INNER JOIN employee e ON e.id = c.employee_id
		WHERE ` + r.monthExpr("c.date") + ` = ?
		GROUP BY e.pinfl
		HAVING SUM(c.amount) > ?
		ORDER BY e.pinfl
	`

	rows, err := r.db.WithContext(ctx).Raw(query, month, threshold).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.HighSalaryRow
	for rows.Next() {
		var row domain.HighSalaryRow
		if err := rows.Scan(&row.Pinfl, &row.TotalAmount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// OrganizationSummaries для каждого pinfl месяца считает число различных
// организаций в его записях и суммарное начисление
func (r *calculationRepository) OrganizationSummaries(ctx context.Context, month int) ([]domain.OrganizationSummaryRow, error) {
	query := `
		SELECT e.pinfl, COUNT(DISTINCT c.organization_id) AS organization_count, SUM(c.amount) AS total_amount
		FROM calculation_table c
		INNER JOIN employee e ON e.id = c.employee_id
		WHERE ` + r.monthExpr("c.date") + ` = ?
		GROUP BY e.pinfl
		ORDER BY e.pinfl
	`

	rows, err := r.db.WithContext(ctx).Raw(query, month).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.OrganizationSummaryRow
	for rows.Next() {
		var row domain.OrganizationSummaryRow
		if err := rows.Scan(&row.Pinfl, &row.OrganizationCount, &row.TotalAmount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// AverageSalaryByOrganization считает среднее начисление месяца по заданной
// организации (через организацию сотрудника)
func (r *calculationRepository) AverageSalaryByOrganization(ctx context.Context, month int, organizationID int64) ([]domain.AverageSalaryRow, error) {
	query := `
		SELECT o.id, o.name, AVG(c.amount) AS average_amount
		FROM calculation_table c
		INNER JOIN employee e ON e.id = c.employee_id
		INNER JOIN organization o ON o.id = e.organization_id
		WHERE ` + r.monthExpr("c.date") + ` = ? AND o.id = ?
		GROUP BY o.id, o.name
		ORDER BY o.id
	`

	rows, err := r.db.WithContext(ctx).Raw(query, month, organizationID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AverageSalaryRow
	for rows.Next() {
		var row domain.AverageSalaryRow
		if err := rows.Scan(&row.OrganizationID, &row.OrganizationName, &row.AverageAmount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// SalariesAndVacations возвращает по одной строке на каждую запись месяца
// с типом SALARY или VACATION, с данными сотрудника
func (r *calculationRepository) SalariesAndVacations(ctx context.Context, month int) ([]domain.SalaryVacationRow, error) {
	query := `
		SELECT e.id, e.first_name, e.last_name, e.pinfl, e.hire_date, e.organization_id, c.amount
		FROM calculation_table c
		INNER JOIN employee e ON e.id = c.employee_id
		WHERE ` + r.monthExpr("c.date") + ` = ? AND c.calculation_type IN (?, ?)
		ORDER BY c.id
	`

	rows, err := r.db.WithContext(ctx).
		Raw(query, month, domain.CalculationTypeSalary, domain.CalculationTypeVacation).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SalaryVacationRow
	for rows.Next() {
		var row domain.SalaryVacationRow
		if err := rows.Scan(&row.EmployeeID, &row.FirstName, &row.LastName, &row.Pinfl,
			&row.HireDate, &row.OrganizationID, &row.Amount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
