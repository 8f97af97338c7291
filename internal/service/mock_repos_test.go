package service

import (
	"context"

	"github.com/hr-payroll-api/internal/domain"
)

// Мок-репозитории в памяти, общие для тестов сервисов.

type mockRegionRepo struct {
	regions map[int64]*domain.Region
	nextID  int64
}

func newMockRegionRepo() *mockRegionRepo {
	return &mockRegionRepo{regions: make(map[int64]*domain.Region), nextID: 1}
}

func (m *mockRegionRepo) GetAll(_ context.Context) ([]domain.Region, error) {
	result := make([]domain.Region, 0, len(m.regions))
	for _, region := range m.regions {
		result = append(result, *region)
	}
	return result, nil
}

func (m *mockRegionRepo) GetByID(_ context.Context, id int64) (*domain.Region, error) {
	if region, ok := m.regions[id]; ok {
		return region, nil
	}
	return nil, domain.ErrRegionNotFound
}

func (m *mockRegionRepo) Create(_ context.Context, region *domain.Region) error {
	region.ID = m.nextID
	m.nextID++
	m.regions[region.ID] = region
	return nil
}

func (m *mockRegionRepo) Update(_ context.Context, region *domain.Region) error {
	m.regions[region.ID] = region
	return nil
}

func (m *mockRegionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.regions[id]; !ok {
		return domain.ErrRegionNotFound
	}
	delete(m.regions, id)
	return nil
}

func (m *mockRegionRepo) ExistsByName(_ context.Context, name string, excludeID *int64) (bool, error) {
	for _, region := range m.regions {
		if region.Name == name && (excludeID == nil || region.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

type mockOrganizationRepo struct {
	orgs   map[int64]*domain.Organization
	nextID int64
}

func newMockOrganizationRepo() *mockOrganizationRepo {
	return &mockOrganizationRepo{orgs: make(map[int64]*domain.Organization), nextID: 1}
}

func (m *mockOrganizationRepo) GetAll(_ context.Context) ([]domain.Organization, error) {
	result := make([]domain.Organization, 0, len(m.orgs))
	for _, org := range m.orgs {
		result = append(result, *org)
	}
	return result, nil
}

func (m *mockOrganizationRepo) GetByID(_ context.Context, id int64) (*domain.Organization, error) {
	if org, ok := m.orgs[id]; ok {
		return org, nil
	}
	return nil, domain.ErrOrganizationNotFound
}

func (m *mockOrganizationRepo) Create(_ context.Context, org *domain.Organization) error {
	org.ID = m.nextID
	m.nextID++
	m.orgs[org.ID] = org
	return nil
}

func (m *mockOrganizationRepo) Update(_ context.Context, org *domain.Organization) error {
	m.orgs[org.ID] = org
	return nil
}

func (m *mockOrganizationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.orgs[id]; !ok {
		return domain.ErrOrganizationNotFound
	}
	delete(m.orgs, id)
	return nil
}

func (m *mockOrganizationRepo) ExistsByName(_ context.Context, name string, excludeID *int64) (bool, error) {
	for _, org := range m.orgs {
		if org.Name == name && (excludeID == nil || org.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockOrganizationRepo) IsDescendant(_ context.Context, ancestorID, descendantID int64) (bool, error) {
	current := descendantID
	visited := make(map[int64]bool)
	for {
		if current == ancestorID {
			return true, nil
		}
		if visited[current] {
			return false, nil
		}
		visited[current] = true
		org, ok := m.orgs[current]
		if !ok || org.ParentID == nil {
			return false, nil
		}
		current = *org.ParentID
	}
}

type mockEmployeeRepo struct {
	employees map[int64]*domain.Employee
	nextID    int64
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[int64]*domain.Employee), nextID: 1}
}

func (m *mockEmployeeRepo) GetAll(_ context.Context) ([]domain.Employee, error) {
	result := make([]domain.Employee, 0, len(m.employees))
	for _, emp := range m.employees {
		result = append(result, *emp)
	}
	return result, nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	if emp, ok := m.employees[id]; ok {
		return emp, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) Create(_ context.Context, emp *domain.Employee) error {
	emp.ID = m.nextID
	m.nextID++
	m.employees[emp.ID] = emp
	return nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, emp *domain.Employee) error {
	m.employees[emp.ID] = emp
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

func (m *mockEmployeeRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := m.employees[id]
	return ok, nil
}

func (m *mockEmployeeRepo) ExistsByFullName(_ context.Context, firstName, lastName string, excludeID *int64) (bool, error) {
	for _, emp := range m.employees {
		if emp.FirstName == firstName && emp.LastName == lastName &&
			(excludeID == nil || emp.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEmployeeRepo) ExistsByPinfl(_ context.Context, pinfl string, excludeID *int64) (bool, error) {
	for _, emp := range m.employees {
		if emp.Pinfl == pinfl && (excludeID == nil || emp.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

type mockCalculationRepo struct {
	calcs  map[int64]*domain.CalculationRecord
	nextID int64
}

func newMockCalculationRepo() *mockCalculationRepo {
	return &mockCalculationRepo{calcs: make(map[int64]*domain.CalculationRecord), nextID: 1}
}

func (m *mockCalculationRepo) GetAll(_ context.Context) ([]domain.CalculationRecord, error) {
	result := make([]domain.CalculationRecord, 0, len(m.calcs))
	for _, calc := range m.calcs {
		result = append(result, *calc)
	}
	return result, nil
}

func (m *mockCalculationRepo) GetByID(_ context.Context, id int64) (*domain.CalculationRecord, error) {
	if calc, ok := m.calcs[id]; ok {
		return calc, nil
	}
	return nil, domain.ErrCalculationNotFound
}

func (m *mockCalculationRepo) Create(_ context.Context, calc *domain.CalculationRecord) error {
	calc.ID = m.nextID
	m.nextID++
	m.calcs[calc.ID] = calc
	return nil
}

func (m *mockCalculationRepo) Update(_ context.Context, calc *domain.CalculationRecord) error {
	m.calcs[calc.ID] = calc
	return nil
}

func (m *mockCalculationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.calcs[id]; !ok {
		return domain.ErrCalculationNotFound
	}
	delete(m.calcs, id)
	return nil
}

func (m *mockCalculationRepo) ExistsInvalidAmount(_ context.Context) (bool, error) {
	for _, calc := range m.calcs {
		if calc.Amount <= 0 {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockCalculationRepo) ExistsByEmployeeID(_ context.Context, employeeID int64) (bool, error) {
	for _, calc := range m.calcs {
		if calc.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

// Отчётные запросы покрываются тестами репозитория на SQLite,
// в сервисных тестах они не участвуют.

func (m *mockCalculationRepo) HighSalaries(_ context.Context, _ int, _ float64) ([]domain.HighSalaryRow, error) {
	return nil, nil
}

func (m *mockCalculationRepo) OrganizationSummaries(_ context.Context, _ int) ([]domain.OrganizationSummaryRow, error) {
	return nil, nil
}

func (m *mockCalculationRepo) AverageSalaryByOrganization(_ context.Context, _ int, _ int64) ([]domain.AverageSalaryRow, error) {
	return nil, nil
}

func (m *mockCalculationRepo) SalariesAndVacations(_ context.Context, _ int) ([]domain.SalaryVacationRow, error) {
	return nil, nil
}
